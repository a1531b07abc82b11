package smoke

import (
	placementapimodels "placement-gateway/models/api/placement"
)

func strPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

var sampleStudent = placementapimodels.StudentProfileCreate{
	Name:  "Sarah Johnson",
	Email: "sarah.johnson@university.edu",
	Phone: "+1-555-0123",
	Education: []placementapimodels.Education{
		{Degree: "Bachelor of Computer Science", University: "Tech University", Year: 2024, Gpa: float64Ptr(3.8)},
	},
	Skills: []placementapimodels.Skill{
		{Name: "Python", Proficiency: "advanced"},
		{Name: "JavaScript", Proficiency: "intermediate"},
		{Name: "React", Proficiency: "intermediate"},
	},
	Experience: []placementapimodels.Experience{
		{
			Company:     "TechCorp Internship",
			Role:        "Software Development Intern",
			Duration:    "3 months",
			Description: "Developed web applications using React and Node.js",
		},
	},
}

var sampleStudentUpdate = placementapimodels.StudentProfileUpdate{
	Name:  strPtr("Sarah Johnson Updated"),
	Phone: strPtr("+1-555-9999"),
}

const sampleResume = "Experienced software developer with expertise in Python, JavaScript, and React. " +
	"Strong background in web development and database management."

var sampleJob = placementapimodels.JobCreate{
	Title:       "Senior Software Engineer",
	Company:     "InnovateTech Solutions",
	Description: "Design, develop and maintain high-quality software applications.",
	Requirements: []string{
		"5+ years of software development experience",
		"Proficiency in Python, JavaScript, and React",
		"Strong problem-solving skills",
	},
	Location:    "San Francisco, CA",
	SalaryRange: strPtr("$120,000 - $160,000"),
	JobType:     "full-time",
}

const updatedJobLocation = "Remote"

var sampleTest = placementapimodels.TestCreate{
	Title:           "Python Programming Assessment",
	Description:     "Basic Python programming knowledge test",
	Category:        "Programming",
	DurationMinutes: 30,
	Questions: []placementapimodels.Question{
		{Question: "What is the output of print(2 ** 3)?", Options: []string{"6", "8", "9", "16"}, CorrectAnswer: 1},
		{Question: "Which of the following is a mutable data type in Python?", Options: []string{"tuple", "string", "list", "int"}, CorrectAnswer: 2},
		{Question: "What does the len() function return?", Options: []string{"The length of an object", "The type of an object", "The value of an object", "None"}, CorrectAnswer: 0},
	},
}

// sampleAnswers gets two of the three sample questions right.
var sampleAnswers = []placementapimodels.TestAnswer{
	{QuestionIndex: 0, SelectedAnswer: 1},
	{QuestionIndex: 1, SelectedAnswer: 2},
	{QuestionIndex: 2, SelectedAnswer: 1},
}

const sampleCorrectAnswers = 2

var sampleQuestion = placementapimodels.InterviewQuestionCreate{
	Question:   "Explain the difference between synchronous and asynchronous programming.",
	Category:   "Programming",
	Difficulty: "medium",
	Skills:     []string{"Programming Concepts", "Async Programming"},
}

const sampleRecommendationLimit = 3
