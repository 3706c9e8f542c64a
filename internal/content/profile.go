// Package content holds the site's static data: the marketing sections,
// travel blog cards, and the Mongolia storybook. Presentation only;
// handlers and templates read it as-is.
package content

type Profile struct {
	Name     string
	Headline string
	Tagline  string
	Email    string
	Location string
	Position string
	About    []string
	Languages []Language
}

type Language struct {
	Name  string
	Level string
}

type ExperienceItem struct {
	Title            string
	Company          string
	Period           string
	Location         string
	Responsibilities []string
	Skills           []string
}

type SkillCategory struct {
	Category string
	Skills   []SkillLevel
}

type SkillLevel struct {
	Name  string
	Level int
}

type EducationItem struct {
	Institution string
	Degree      string
	Period      string
	Grade       string
	Activities  []string
}

type CertificationItem struct {
	Name   string
	Issuer string
	Issued string
}

func Site() Profile {
	return Profile{
		Name:     "Tejesh Krishnammagari",
		Headline: "Software Engineer",
		Tagline:  "Developing full-stack web applications and automations to safeguard Intel's external intellectual property.",
		Email:    "tejeshkumar448@gmail.com",
		Location: "Bengaluru, Karnataka, India",
		Position: "Software Application Development Engineer at Intel Corporation",
		About: []string{
			"I am a Software Application Development Engineer at Intel Corporation with expertise in React.js, Python, JavaScript, and Node.js. I specialize in developing and deploying full-stack applications, managing implementation processes, and utilizing industry-standard tools and techniques to ensure efficient and effective application development.",
			"Throughout my career, I have successfully led teams, trained interns, conducted code reviews, and implemented strategic initiatives to enhance project visibility and engagement. I am passionate about creating robust, user-friendly applications that solve complex problems.",
		},
		Languages: []Language{
			{Name: "English", Level: "Full professional proficiency"},
			{Name: "Hindi", Level: "Full professional proficiency"},
			{Name: "Telugu", Level: "Native or bilingual proficiency"},
			{Name: "French", Level: "Elementary proficiency"},
		},
	}
}

func Experiences() []ExperienceItem {
	return []ExperienceItem{
		{
			Title:    "Software Application Development Engineer",
			Company:  "Intel Corporation",
			Period:   "Jun 2022 - Present",
			Location: "Bengaluru, Karnataka, India",
			Responsibilities: []string{
				"Developed and deployed full stack applications using React, Python, and Node.js",
				"Managed and trained interns, conducted code reviews, and led successful implementation processes",
				"Utilized industry-standard tools and techniques to ensure efficient and effective application development",
			},
			Skills: []string{"JavaScript", "Flask", "React.js", "Node.js", "Python"},
		},
		{
			Title:    "Graduate Intern Technical",
			Company:  "Intel Corporation",
			Period:   "Aug 2021 - Jun 2022",
			Location: "Bengaluru, Karnataka, India",
			Responsibilities: []string{
				"Developed backend scripts using Python for data processing and analysis",
				"Created frontend applications to streamline critical data processing tasks",
				"Ensured thorough documentation of projects for future reference",
			},
			Skills: []string{"JavaScript", "Flask", "Python", "Data Analysis"},
		},
		{
			Title:    "Research Intern | Web developer",
			Company:  "TechCiti Technologies Private Limited",
			Period:   "Apr 2020 - May 2020",
			Location: "Remote",
			Responsibilities: []string{
				"Researched machine learning concepts to develop a model for bipolar disorder detection among patients and healthy siblings",
				"Presented research paper at the International Semantic Intelligence Conference 2021 organised by university of Lubek Germany",
				"Collaborated with team members to implement the machine learning model successfully",
			},
			Skills: []string{"Machine Learning", "Random Forest", "Research", "Web Development"},
		},
		{
			Title:    "Public Relations Chair",
			Company:  "IEEE NPSS VIT Chapter",
			Period:   "Jul 2019 - Mar 2020",
			Location: "Vellore, Tamil Nadu, India",
			Responsibilities: []string{
				"Successfully led communication and outreach efforts to enhance the chapter's visibility and engagement within the community",
				"Developed and implemented strategic initiatives to promote the chapter's mission",
				"Coordinated impactful events and campaigns to increase community involvement",
			},
		},
		{
			Title:    "District Coordinator - Digital Literacy Program",
			Company:  "Government of Andhra Pradesh",
			Period:   "May 2018 - Jun 2018",
			Location: "Chittoor, Andhra Pradesh, India",
			Responsibilities: []string{
				"Coordinated efforts to connect donors with schools to facilitate digitalization of government schools in Chittoor, Andhra Pradesh",
				"Enabled access to technology and digital resources for schools through donor support",
				"Collaborated with stakeholders to ensure successful implementation of the Digital Literacy Program",
			},
		},
	}
}

func SkillCategories() []SkillCategory {
	return []SkillCategory{
		{
			Category: "Languages & Frameworks",
			Skills: []SkillLevel{
				{Name: "React.js", Level: 90},
				{Name: "Python", Level: 85},
				{Name: "JavaScript", Level: 90},
				{Name: "Node.js", Level: 80},
				{Name: "TypeScript", Level: 75},
				{Name: "Redux.js", Level: 70},
				{Name: "Angular", Level: 60},
				{Name: "Flask", Level: 75},
			},
		},
		{
			Category: "Tools & Technologies",
			Skills: []SkillLevel{
				{Name: "Git", Level: 85},
				{Name: "Docker", Level: 70},
				{Name: "AWS", Level: 65},
				{Name: "REST APIs", Level: 85},
				{Name: "CI/CD", Level: 70},
			},
		},
		{
			Category: "Machine Learning",
			Skills: []SkillLevel{
				{Name: "Machine Learning", Level: 60},
				{Name: "Random Forest", Level: 55},
				{Name: "Data Analysis", Level: 75},
			},
		},
	}
}

func Educations() []EducationItem {
	return []EducationItem{
		{
			Institution: "Vellore Institute of Technology",
			Degree:      "M.Tech Integrated Software Engineering, Computer Science",
			Period:      "2017 - 2022",
			Grade:       "9.12/10 CGPA",
			Activities: []string{
				"Public Relations Chair - IEEE NPSS",
				"Program Coordinator - i-PACT 2021 (Innovations in Power and Advanced Computing Technologies)",
			},
		},
		{
			Institution: "Sai Sri Chaitanya Junior College",
			Degree:      "Higher Secondary Education, MPC",
			Period:      "2015 - 2017",
			Grade:       "97.1/100 %",
		},
	}
}

func Certifications() []CertificationItem {
	return []CertificationItem{
		{Name: "Product Assurance and Security Yellow Belt - Software", Issuer: "Intel Corporation", Issued: "Feb 2023"},
		{Name: "Product Assurance and Security White Belt", Issuer: "Intel Corporation", Issued: "Feb 2022"},
		{Name: "Security Analyst", Issuer: "nasscom", Issued: "Aug 2021"},
		{Name: "Embedded Hardware and Operating Systems", Issuer: "Coursera", Issued: "Jun 2020"},
		{Name: "The Bits and Bytes of Computer Networking", Issuer: "Google", Issued: "Nov 2019"},
	}
}
