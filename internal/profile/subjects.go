package profile

import "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"

var subjectProfiles = map[entity.Category]Subjects{
	entity.CategoryHappy: {
		Primary: []string{
			"Advanced Programming Projects",
			"Machine Learning Implementation",
			"System Design Challenges",
			"Algorithm Optimization",
			"New Technology Exploration",
			"Creative Problem Solving",
			"Innovation Projects",
			"Competitive Programming",
		},
		Secondary: []string{
			"Database Design",
			"Web Development",
			"Mobile App Development",
			"Game Development",
		},
		Reasoning: "High energy and positive mood - perfect for tackling challenging new concepts!",
		Duration:  "60-90 minutes (high focus capacity)",
		Tips: []string{
			"Take advantage of high energy - tackle difficult topics",
			"Use active learning methods like teaching others",
			"Try creative problem-solving approaches",
			"Set ambitious but achievable goals",
		},
		BreakFrequency: "Every 60-90 minutes (can sustain longer focus)",
		FocusAreas: []string{
			"New Learning",
			"Creative Projects",
			"Problem Solving",
			"Innovation",
		},
	},
	entity.CategorySad: {
		Primary: []string{
			"Mathematics Review",
			"Theory Revision",
			"Reading Technical Documentation",
			"Concept Clarification",
			"Previous Assignments Review",
			"Formula Practice",
			"Gentle Programming Practice",
			"Study Notes Organization",
		},
		Secondary: []string{
			"Engineering Ethics",
			"History of Technology",
			"Technical Writing",
			"Research Paper Reading",
		},
		Reasoning: "Low energy state - focus on review and consolidation rather than new learning.",
		Duration:  "30-45 minutes (shorter sessions work better)",
		Tips: []string{
			"Be gentle with yourself - progress is still progress",
			"Use familiar study methods that feel comfortable",
			"Focus on review rather than new material",
			"Consider studying with a friend for support",
		},
		BreakFrequency: "Every 30-45 minutes (frequent breaks help mood)",
		FocusAreas: []string{
			"Review",
			"Consolidation",
			"Theory",
			"Reading",
		},
	},
	entity.CategoryStressed: {
		Primary: []string{
			"Basic Mathematics Practice",
			"Simple Programming Exercises",
			"Familiar Topic Revision",
			"Easy Problem Sets",
			"Flashcard Review",
			"Light Reading",
			"Concept Mapping",
			"Organized Note-taking",
		},
		Secondary: []string{
			"Engineering Drawing",
			"Basic Circuit Analysis",
			"Simple Physics Problems",
			"Vocabulary Building",
		},
		Reasoning: "High stress - stick to familiar, low-pressure topics to build confidence.",
		Duration:  "20-30 minutes (avoid overwhelming)",
		Tips: []string{
			"Start with easy topics to build confidence",
			"Use relaxation techniques before studying",
			"Break tasks into very small, manageable chunks",
			"Avoid time pressure - focus on understanding",
		},
		BreakFrequency: "Every 20-25 minutes (prevent overwhelm)",
		FocusAreas: []string{
			"Basics",
			"Familiar Topics",
			"Easy Practice",
			"Organization",
		},
	},
	entity.CategoryNeutral: {
		Primary: []string{
			"Regular Coursework",
			"Assignment Completion",
			"Steady Problem Solving",
			"Balanced Study Session",
			"Project Development",
			"Lab Report Writing",
			"Exam Preparation",
			"Homework Tasks",
		},
		Secondary: []string{
			"Data Structures",
			"Operating Systems",
			"Computer Networks",
			"Software Engineering",
		},
		Reasoning: "Balanced mood - ideal for regular study routine and steady progress.",
		Duration:  "45-60 minutes (standard session length)",
		Tips: []string{
			"Maintain steady, consistent pace",
			"Use proven study techniques",
			"Balance different types of learning activities",
			"Set clear, measurable goals",
		},
		BreakFrequency: "Every 45-60 minutes (standard Pomodoro technique)",
		FocusAreas: []string{
			"Regular Study",
			"Assignments",
			"Balanced Learning",
			"Progress",
		},
	},
}

var fallbackSubjects = Subjects{
	Primary:        []string{"Regular Coursework"},
	Secondary:      []string{"Assignment Completion", "Review Session"},
	Reasoning:      "Balanced approach for unknown emotional state",
	Duration:       "45-60 minutes",
	Tips:           []string{"Take regular breaks", "Stay hydrated"},
	BreakFrequency: "Every 45 minutes",
	FocusAreas:     []string{"General Study"},
}

var timeSubjects = map[TimePeriod][]string{
	PeriodMorning:   {"Complex Problem Solving", "New Concept Learning", "Mathematics"},
	PeriodAfternoon: {"Programming Practice", "Project Work", "Lab Sessions"},
	PeriodEvening:   {"Review Sessions", "Light Reading", "Assignment Completion"},
	PeriodNight:     {"Revision", "Note Organization", "Theory Reading"},
}

var branchSubjects = map[string][]string{
	"computer_science": {
		"Data Structures & Algorithms",
		"Database Management",
		"Computer Networks",
		"Operating Systems",
		"Software Engineering",
		"Machine Learning",
		"Web Development",
		"Mobile Computing",
		"Cybersecurity",
	},
	"electronics": {
		"Digital Electronics",
		"Analog Circuits",
		"Signal Processing",
		"Microprocessors",
		"VLSI Design",
		"Communication Systems",
		"Control Systems",
		"Embedded Systems",
	},
	"mechanical": {
		"Thermodynamics",
		"Fluid Mechanics",
		"Machine Design",
		"Manufacturing Processes",
		"CAD/CAM",
		"Robotics",
		"Automotive Engineering",
		"Materials Science",
	},
	"civil": {
		"Structural Analysis",
		"Concrete Technology",
		"Surveying",
		"Transportation Engineering",
		"Environmental Engineering",
		"Geotechnical Engineering",
		"Construction Management",
	},
}
