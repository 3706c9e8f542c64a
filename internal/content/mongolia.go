package content

import "portfolio-server/internal/book"

// MongoliaBook is the storybook shown from the travel blogs page.
func MongoliaBook() book.Book {
	return book.Book{
		Slug:       "mongolia",
		Title:      "Under the Eternal Blue Sky",
		Author:     "Tejesh Krishnammagari",
		CoverImage: "https://images.unsplash.com/photo-1559628376-f3fe5f782a2e?w=800&h=600&fit=crop",
		Pages: []book.Page{
			{
				Title: "Chapter One: The Call of the Steppe",
				Content: "The plane descended through clouds that seemed to stretch endlessly, much like the land they concealed. As we broke through the final layer, Mongolia revealed itself - a vast canvas of earth and sky, painted in hues of amber and jade. The Chinggis Khaan International Airport appeared almost modest against the sprawling landscape, a mere pinprick in an ocean of space.\n\n" +
					"Stepping onto the tarmac, I felt the crisp autumn air fill my lungs, carrying with it the faint scent of distant grasslands and the promise of adventure. Ulaanbaatar lay before me, a city caught between epochs - Soviet-era apartment blocks stood alongside gleaming modern towers, while traditional gers dotted the hillsides like white mushrooms after rain.\n\n" +
					"That first evening, I wandered through Sukhbaatar Square, the heart of modern Mongolia. The imposing statue of Chinggis Khan dominated the space, his stone gaze fixed on the horizon his armies once conquered.",
				Image:         "https://images.unsplash.com/photo-1559628376-f3fe5f782a2e?w=800&h=600&fit=crop",
				ImagePosition: book.ImageTop,
			},
			{
				Content: "As night fell, I found myself on a rooftop bar, looking out over the city. The lights of Ulaanbaatar twinkled below, but it was the darkness beyond that captivated me - the vast, empty darkness where the steppe began. Tomorrow, I would venture into that darkness, into a landscape that had remained largely unchanged since the days of the great Khan himself.\n\n" +
					"I ordered airag, the traditional fermented mare's milk, and raised my glass to the unknown adventures that awaited. The liquid was sour and slightly effervescent, an acquired taste that somehow seemed to embody the spirit of this land - harsh, unfamiliar, but ultimately rewarding for those willing to embrace it.",
				ImagePosition: book.ImageBottom,
			},
			{
				Title: "Chapter Two: Into the Endless Green",
				Content: "Dawn broke cold and clear as we left Ulaanbaatar behind. My guide, Bataar, was a man shaped by the steppe - weathered skin the color of leather, eyes that squinted perpetually against the wind, and hands that spoke of a lifetime working with horses and harsh weather. His Russian-made jeep rattled and groaned over roads that were more suggestion than reality.\n\n" +
					"As the city's outskirts faded, the steppe emerged in all its glory. There is no way to adequately describe the feeling of seeing it for the first time - the sheer, overwhelming vastness of it. The earth rolled away in gentle waves, stretching to a horizon so distant it seemed to mock the very concept of distance.",
				Image:         "https://images.unsplash.com/photo-1548013146-72479768bada?w=800&h=600&fit=crop",
				ImagePosition: book.ImageTop,
			},
			{
				Content: "\"In Mongolia,\" Bataar said, breaking hours of companionable silence, \"the land owns you. You don't own the land.\" He gestured broadly at the landscape. \"My grandfather's grandfather rode these same paths. His grandson will ride them too. The land remains. We are just visitors.\"\n\n" +
					"We stopped for lunch at a nomadic family's ger, a white felt structure that appeared suddenly on the horizon like a miracle. Inside, the warmth from the central stove was immediate and enveloping. The family - three generations living together - welcomed us with the effortless hospitality that is the cornerstone of nomadic culture.",
				ImagePosition: book.ImageBottom,
			},
			{
				Title: "Chapter Three: The Horse Lords",
				Content: "The Mongolian horse is not a beautiful creature by conventional standards. Short, stocky, with a thick coat and sturdy legs, it lacks the elegance of Arabian steeds or the majesty of thoroughbreds. But what it lacks in beauty, it makes up for in resilience and spirit. These are the horses that carried the Mongol armies across continents, that can survive on nothing but grass and snow, that know the steppe better than any GPS ever could.\n\n" +
					"Mounting my assigned horse - a dun-colored mare with intelligent eyes - I felt a mixture of excitement and trepidation.",
				Image:         "https://images.unsplash.com/photo-1553284965-83fd3e82fa5a?w=800&h=600&fit=crop",
				ImagePosition: book.ImageFull,
			},
			{
				Content: "We rode for hours, and with each passing mile, I felt something shift inside me. The rhythm of the horse's gait, the whisper of wind through grass, the absolute silence broken only by natural sounds - it all conspired to strip away the layers of modern life. Out here, there were no deadlines, no emails, no endless scroll of social media. There was only the present moment, the movement of the horse, the vast sky above.\n\n" +
					"In the distance, I spotted a herd of wild horses, their manes flowing as they galloped across the steppe. The takhi, Bataar said quietly, the last truly wild horses on Earth. They were gone, hunted to extinction. But we brought them back. Mongolia remembers its horses.",
			},
			{
				Title: "Chapter Four: The Ger and the Stars",
				Content: "That night, I experienced my first night in a traditional ger. From the outside, these structures appear simple - a circular frame covered in felt, with a stovepipe protruding from the center. But inside, I discovered a space that was both functional and deeply comfortable, a dwelling perfected over thousands of years of nomadic life.\n\n" +
					"The ger's design is ingenious. The circular shape provides maximum space with minimum materials and offers no corners for wind to catch. The felt walls provide insulation against both heat and cold.",
				Image:         "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=800&h=600&fit=crop",
				ImagePosition: book.ImageTop,
			},
			{
				Content: "As darkness fell, the family gathered around the stove. The grandmother, her face a map of wrinkles earned through decades of steppe living, prepared tsai suutai, traditional milk tea. The father brought out his morin khuur, and soon the ger filled with music - haunting, beautiful melodies that spoke of loneliness and longing, of vast spaces and the eternal sky.\n\n" +
					"Later, unable to sleep, I stepped outside into the night. The sky was ablaze with stars, more stars than I had ever seen or imagined seeing. The Milky Way stretched overhead like a luminous river, and suddenly I understood why the ancients had been so obsessed with the heavens.",
			},
			{
				Title: "Chapter Five: The Gobi Embrace",
				Content: "The transition from steppe to desert was gradual yet profound. The grass grew sparser, the earth harder and more rocky. The air grew drier, hotter during the day and bitingly cold at night. We had entered the Gobi Desert, one of the world's largest and most forbidding landscapes.\n\n" +
					"But forbidding is the wrong word. The Gobi is harsh, yes, but it possesses an austere beauty that takes your breath away. The sand dunes rise like frozen waves, their crests sharp as knife blades. The colors shift with the light - ochre in the morning, gold at midday, deep crimson as the sun sets.",
				Image:         "https://images.unsplash.com/photo-1473580044384-7ba9967e16a0?w=800&h=600&fit=crop",
				ImagePosition: book.ImageFull,
			},
			{
				Content: "Khongoryn Els, the Singing Dunes, lived up to their legendary name. As wind swept across their surface, the sand produced a low, resonant hum - a sound both eerie and beautiful. Local legend says the dunes sing the songs of lost travelers, their voices carried eternally on the desert wind.\n\n" +
					"I climbed to the top of the highest dune, a journey that left me breathless and covered in sand. But the view from the summit made every difficult step worthwhile. The desert stretched to every horizon, an ocean of sand and stone.",
			},
			{
				Title: "Epilogue: The Eternal Blue Sky",
				Content: "My final morning in Mongolia, I woke before dawn and climbed a hill overlooking Ulaanbaatar. As the sun rose, painting the sky in shades of pink and gold, I thought about everything I had experienced - the vast steppes, the warm hospitality, the ancient traditions surviving in a modern world.\n\n" +
					"Mongolia had changed me in ways I was still processing. It taught me about space - real, physical space, the kind that modern city dwellers never experience. It taught me about simplicity - how much we don't actually need, how little is required for happiness when you have good company, good food, and a warm fire.",
				Image:         "https://images.unsplash.com/photo-1518709594023-6eab9bab7b23?w=800&h=600&fit=crop",
				ImagePosition: book.ImageBottom,
			},
			{
				Content: "As I boarded my flight home, I looked back at the city one last time. Somewhere beyond those buildings, beyond the hills and the roads, the steppe continued its eternal existence. The nomads were waking in their gers, preparing tea, tending their herds. The horses were running free across the grasslands. The Gobi's dunes were singing their morning song.\n\n" +
					"Mongolia is often called the \"Land of the Eternal Blue Sky,\" and now I understood why. Under that sky, with its impossible vastness and clarity, you glimpse something eternal - a connection to the earth and to our ancestors that modernity has tried to sever.\n\n" +
					"I carried a piece of that sky with me as I flew home, and I knew that someday, inevitably, I would return. The steppe calls to those who have known it, and its call is not easily ignored.\n\nThe End",
			},
		},
	}
}

// Books indexes the available storybooks by slug.
func Books() map[string]book.Book {
	return map[string]book.Book{
		"mongolia": MongoliaBook(),
	}
}
