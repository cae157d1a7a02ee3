// internal/generate/pools.go
package generate

// Hand-curated pools backing the synthetic data generators. These are
// implementation data: small enough to audit, varied enough that repeated
// fills do not look stamped out.

var firstNames = []string{
	"James", "Maria", "David", "Sarah", "Michael", "Emily",
	"Daniel", "Laura", "Kevin", "Rachel", "Thomas", "Nina",
}

var lastNames = []string{
	"Anderson", "Brooks", "Carter", "Delgado", "Ellis", "Foster",
	"Griffin", "Hayes", "Iverson", "Jennings", "Keller", "Morales",
}

var emailDomains = []string{
	"example.com", "mailinator.com", "test-mail.org",
	"inbox-demo.net", "sample-post.io", "mockmail.dev",
}

var streetNames = []string{
	"Maple Street", "Oak Avenue", "Cedar Lane", "Elm Drive",
	"Pine Road", "Willow Court", "Birch Boulevard", "Sycamore Way",
}

var unitDesignators = []string{
	"Apt 2B", "Suite 310", "Unit 7", "Apt 14", "Suite 22", "Unit 3C",
}

var cities = []string{
	"Austin", "Denver", "Portland", "Atlanta", "Seattle", "Chicago",
	"Phoenix", "Boston", "Nashville", "Columbus", "Raleigh", "Tampa",
}

var states = []string{
	"California", "Texas", "Colorado", "Oregon", "Georgia",
	"Washington", "Illinois", "Arizona", "Massachusetts", "Tennessee",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany",
	"Australia", "Netherlands", "France", "Sweden", "Ireland", "Spain",
}

var companyPrefixes = []string{
	"Blue", "Summit", "North", "Clear", "Bright", "Iron",
	"Silver", "Green", "Atlas", "Nova",
}

var companySuffixes = []string{
	"Systems", "Labs", "Works", "Solutions", "Group",
	"Dynamics", "Industries", "Partners", "Technologies", "Ventures",
}

var jobTitles = []string{
	"Software Engineer", "Product Manager", "Account Executive",
	"Operations Manager", "Data Analyst", "Marketing Specialist",
	"Customer Success Manager", "Project Coordinator", "UX Designer",
	"Financial Analyst",
}

var departments = []string{
	"Engineering", "Sales", "Marketing", "Operations",
	"Human Resources", "Finance", "Customer Support", "Product",
}

var universities = []string{
	"State University", "Riverside College", "Northfield University",
	"Lakeview Institute of Technology", "Westbrook University",
	"Central Valley College", "Harborview University", "Summit State College",
}

var degrees = []string{
	"Bachelor of Science", "Bachelor of Arts", "Master of Science",
	"Master of Business Administration", "Associate Degree",
	"Bachelor of Engineering", "Master of Arts",
}

var majors = []string{
	"Computer Science", "Business Administration", "Psychology",
	"Mechanical Engineering", "Economics", "Communications",
	"Biology", "Marketing", "Political Science", "Graphic Design",
}

var shortFeedback = []string{
	"Great experience overall.",
	"Works well for my needs.",
	"Easy to use and reliable.",
	"Very happy with the service.",
	"Good value for the price.",
	"Does exactly what I expected.",
	"Smooth process from start to finish.",
	"No complaints so far.",
}

var longFeedback = []string{
	"I've been using this for a few months now and it has consistently met my expectations. The interface is intuitive and support has been responsive whenever I had questions.",
	"Overall a very positive experience. Setup was straightforward, and the features I rely on day to day have been dependable. I would recommend it to colleagues in a similar situation.",
	"The product does what it promises. There were a couple of rough edges early on, but recent updates have addressed most of them and the experience keeps improving.",
	"Solid service with good attention to detail. The onboarding materials were clear, and I was able to get productive quickly without needing outside help.",
	"I appreciate how consistent the experience has been. Performance is good, the documentation is thorough, and issues I reported were resolved faster than I expected.",
	"Very satisfied with my experience so far. The team clearly cares about quality, and the regular updates show they listen to feedback from their users.",
}

var visitReasons = []string{
	"Looking for more information before making a decision.",
	"A colleague recommended this to me.",
	"Comparing options for an upcoming project.",
	"Researching solutions for my team.",
	"Returning to check on new features.",
	"Following up on an earlier inquiry.",
}

var trafficSources = []string{
	"Search engine", "Social media", "Word of mouth",
	"Online advertisement", "Email newsletter", "Blog article",
	"Conference or event", "Colleague referral",
}

var genericSentences = []string{
	"This looks good to me.",
	"Everything matches my expectations.",
	"I have no additional comments at this time.",
	"Please see my earlier responses for details.",
	"Happy to provide more information if needed.",
	"All the relevant details are included above.",
}
