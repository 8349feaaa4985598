package chatbot

// SeedRecords returns the starter FAQ set inserted on first initialization.
// 16 records across the six helpdesk categories.
func SeedRecords() []FAQRecord {
	return []FAQRecord{
		{
			Category: "Admissions",
			Question: "What are the admission requirements?",
			Answer:   "Admission requirements include: 1) Completed application form 2) Academic transcripts 3) Entrance exam scores 4) Letters of recommendation 5) Statement of purpose. Minimum GPA requirement is 3.0.",
			Keywords: []string{"admission", "requirements", "apply", "application", "GPA", "transcripts"},
		},
		{
			Category: "Admissions",
			Question: "When is the application deadline?",
			Answer:   "Application deadlines are: Fall semester - March 15th, Spring semester - October 15th, Summer semester - February 15th. Late applications may be considered on a case-by-case basis.",
			Keywords: []string{"deadline", "application", "fall", "spring", "summer", "dates"},
		},
		{
			Category: "Admissions",
			Question: "What is the application fee?",
			Answer:   "The application fee is $75 for domestic students and $100 for international students. Fee waivers are available for students with financial need.",
			Keywords: []string{"application fee", "cost", "payment", "waiver", "international"},
		},
		{
			Category: "Academic",
			Question: "How do I register for classes?",
			Answer:   "Class registration is done online through the student portal. Registration opens based on your class standing: Seniors - Day 1, Juniors - Day 2, Sophomores - Day 3, Freshmen - Day 4. You'll need to meet with your academic advisor before registration.",
			Keywords: []string{"register", "classes", "courses", "enrollment", "student portal", "advisor"},
		},
		{
			Category: "Academic",
			Question: "What is the grading system?",
			Answer:   "Our grading system: A (90-100%), B (80-89%), C (70-79%), D (60-69%), F (below 60%). Grade points: A=4.0, B=3.0, C=2.0, D=1.0, F=0.0. Minimum GPA to remain in good standing is 2.0.",
			Keywords: []string{"grades", "grading", "GPA", "points", "academic standing"},
		},
		{
			Category: "Academic",
			Question: "How do I change my major?",
			Answer:   "To change your major: 1) Meet with your current advisor 2) Meet with advisor in new department 3) Complete major change form 4) Submit to Registrar's office. Some majors have specific requirements or deadlines.",
			Keywords: []string{"change major", "switch major", "academic advisor", "registrar"},
		},
		{
			Category: "Financial",
			Question: "What financial aid is available?",
			Answer:   "Financial aid options include: Federal grants and loans, state grants, institutional scholarships, work-study programs. Complete FAFSA by priority deadline March 1st for best consideration.",
			Keywords: []string{"financial aid", "scholarships", "grants", "loans", "FAFSA", "work study"},
		},
		{
			Category: "Financial",
			Question: "When is tuition due?",
			Answer:   "Tuition payment deadlines: Fall semester - August 15th, Spring semester - January 15th, Summer semester - May 15th. Payment plans are available through the Bursar's office.",
			Keywords: []string{"tuition", "payment", "due date", "bursar", "payment plan"},
		},
		{
			Category: "Financial",
			Question: "How do I apply for scholarships?",
			Answer:   "Scholarship applications are available on the Financial Aid portal. General application deadline is February 1st. Submit transcripts, essays, and letters of recommendation as required.",
			Keywords: []string{"scholarships", "apply", "financial aid", "deadline", "application"},
		},
		{
			Category: "Campus Life",
			Question: "What dining options are available?",
			Answer:   "Dining options include: Main cafeteria (all-you-can-eat), food court with various vendors, coffee shops, and convenience stores. Meal plans are required for on-campus residents.",
			Keywords: []string{"dining", "food", "cafeteria", "meal plans", "restaurants", "campus"},
		},
		{
			Category: "Campus Life",
			Question: "How do I join clubs and organizations?",
			Answer:   "Join clubs at the Activities Fair during orientation week, or visit the Student Life office. Over 100+ student organizations available including academic, cultural, recreational, and service groups.",
			Keywords: []string{"clubs", "organizations", "activities", "student life", "extracurricular"},
		},
		{
			Category: "Campus Life",
			Question: "What housing options are available?",
			Answer:   "Housing options: Traditional dorms, suite-style residences, apartments for upperclassmen. All freshmen required to live on campus. Housing applications due by May 1st.",
			Keywords: []string{"housing", "dorms", "residence", "apartments", "campus living"},
		},
		{
			Category: "Technical",
			Question: "How do I access the student portal?",
			Answer:   "Access the student portal at portal.college.edu using your student ID and password. For password resets, visit IT Help Desk in Library Room 101 or call ext. 4357.",
			Keywords: []string{"student portal", "login", "password", "IT support", "help desk"},
		},
		{
			Category: "Technical",
			Question: "How do I connect to campus WiFi?",
			Answer:   "Connect to 'CollegeWiFi' network using your student credentials. For guest access, use 'CollegeGuest' with no password. For technical issues, contact IT at help@college.edu.",
			Keywords: []string{"WiFi", "internet", "network", "connection", "IT support"},
		},
		{
			Category: "Library",
			Question: "What are library hours?",
			Answer:   "Library hours: Monday-Thursday 7am-11pm, Friday 7am-9pm, Saturday 9am-9pm, Sunday 10am-11pm. Extended hours during finals week. Check website for holiday schedules.",
			Keywords: []string{"library", "hours", "schedule", "finals", "holiday"},
		},
		{
			Category: "Library",
			Question: "How do I reserve study rooms?",
			Answer:   "Reserve study rooms online through the library website or at the front desk. Rooms can be booked up to 7 days in advance for up to 4 hours per day.",
			Keywords: []string{"study rooms", "reserve", "booking", "library", "group study"},
		},
	}
}
