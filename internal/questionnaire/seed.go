package questionnaire

import "github.com/abhisek/teamlens/internal/disc"

// seedQuestions defines the canonical 24-question catalog:
// four categories of six questions each.
var seedQuestions = []Question{
	// General behavior (1-6)
	{
		ID:       1,
		Text:     "In work situations, I tend to:",
		Category: CategoryBehavior,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Make quick decisions and take charge",
			disc.ChoiceB: "Engage and motivate the people around me",
			disc.ChoiceC: "Stay calm and support the team",
			disc.ChoiceD: "Analyze carefully before acting",
		},
	},
	{
		ID:       2,
		Text:     "When I face a problem, my first reaction is to:",
		Category: CategoryBehavior,
		Weight:   5,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Tackle it head-on and look for an immediate solution",
			disc.ChoiceB: "Talk with other people to generate ideas",
			disc.ChoiceC: "Think about the implications for everyone involved",
			disc.ChoiceD: "Research data and facts before deciding",
		},
	},
	{
		ID:       3,
		Text:     "My colleagues describe me as someone who is:",
		Category: CategoryBehavior,
		Weight:   3,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Determined and results-driven",
			disc.ChoiceB: "Enthusiastic and communicative",
			disc.ChoiceC: "Patient and dependable",
			disc.ChoiceD: "Precise and meticulous",
		},
	},
	{
		ID:       4,
		Text:     "In a team meeting, I usually:",
		Category: CategoryBehavior,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Lead the discussion and set the agenda",
			disc.ChoiceB: "Contribute creative ideas and energize the group",
			disc.ChoiceC: "Listen closely and support other people's ideas",
			disc.ChoiceD: "Ask questions and double-check details",
		},
	},
	{
		ID:       5,
		Text:     "Under pressure, I tend to:",
		Category: CategoryBehavior,
		Weight:   5,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Become more assertive and goal-focused",
			disc.ChoiceB: "Seek support and collaboration from others",
			disc.ChoiceC: "Stay steady and avoid conflict",
			disc.ChoiceD: "Concentrate even harder on the details",
		},
	},
	{
		ID:       6,
		Text:     "My biggest motivation at work is:",
		Category: CategoryBehavior,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Hitting targets and beating challenges",
			disc.ChoiceB: "Recognition and social interaction",
			disc.ChoiceC: "Stability and harmony in the environment",
			disc.ChoiceD: "Quality and precision in the work",
		},
	},

	// Communication (7-12)
	{
		ID:       7,
		Text:     "My communication style is:",
		Category: CategoryCommunication,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Direct and to the point",
			disc.ChoiceB: "Expressive and friendly",
			disc.ChoiceC: "Calm and patient",
			disc.ChoiceD: "Formal and detailed",
		},
	},
	{
		ID:       8,
		Text:     "When I disagree with someone, I:",
		Category: CategoryCommunication,
		Weight:   5,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "State my opinion clearly and defend my point",
			disc.ChoiceB: "Try to persuade with enthusiasm",
			disc.ChoiceC: "Avoid confrontation and look for consensus",
			disc.ChoiceD: "Present facts and logical arguments",
		},
	},
	{
		ID:       9,
		Text:     "When giving feedback, I prefer to be:",
		Category: CategoryCommunication,
		Weight:   3,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Frank and straight to the point",
			disc.ChoiceB: "Positive and encouraging",
			disc.ChoiceC: "Gentle and constructive",
			disc.ChoiceD: "Specific and fact-based",
		},
	},
	{
		ID:       10,
		Text:     "In casual conversations, I usually:",
		Category: CategoryCommunication,
		Weight:   3,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Get straight to the main subject",
			disc.ChoiceB: "Jump across several topics with enthusiasm",
			disc.ChoiceC: "Listen more than I talk",
			disc.ChoiceD: "Prefer conversations with a specific purpose",
		},
	},
	{
		ID:       11,
		Text:     "When presenting ideas, I:",
		Category: CategoryCommunication,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Focus on outcomes and impact",
			disc.ChoiceB: "Use storytelling and inspiring examples",
			disc.ChoiceC: "Consider the effect on people",
			disc.ChoiceD: "Present detailed data and analysis",
		},
	},
	{
		ID:       12,
		Text:     "I prefer to receive instructions that are:",
		Category: CategoryCommunication,
		Weight:   3,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Quick and focused on the expected result",
			disc.ChoiceB: "Interactive, with room for creativity",
			disc.ChoiceC: "Clear, with time to absorb them",
			disc.ChoiceD: "Detailed and documented",
		},
	},

	// Teamwork (13-18)
	{
		ID:       13,
		Text:     "In a team project, my natural role is to:",
		Category: CategoryWork,
		Weight:   5,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Lead and make decisions",
			disc.ChoiceB: "Inspire and motivate the group",
			disc.ChoiceC: "Support others and keep the harmony",
			disc.ChoiceD: "Guarantee quality and precision",
		},
	},
	{
		ID:       14,
		Text:     "I prefer to work in environments that are:",
		Category: CategoryWork,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Dynamic and competitive",
			disc.ChoiceB: "Collaborative and social",
			disc.ChoiceC: "Stable and predictable",
			disc.ChoiceD: "Organized and structured",
		},
	},
	{
		ID:       15,
		Text:     "When delegating tasks, I:",
		Category: CategoryWork,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Give autonomy and expect results",
			disc.ChoiceB: "Delegate with enthusiasm and trust",
			disc.ChoiceC: "Make sure the person is comfortable",
			disc.ChoiceD: "Provide detailed instructions",
		},
	},
	{
		ID:       16,
		Text:     "The contribution my team values most in me is:",
		Category: CategoryWork,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "The ability to make tough decisions",
			disc.ChoiceB: "Contagious positivity and energy",
			disc.ChoiceC: "Steadiness and reliability",
			disc.ChoiceD: "Attention to detail and precision",
		},
	},
	{
		ID:       17,
		Text:     "I handle change by:",
		Category: CategoryWork,
		Weight:   5,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Embracing it quickly and hunting for opportunities",
			disc.ChoiceB: "Staying optimistic and adaptable",
			disc.ChoiceC: "Being cautious and preferring gradual transitions",
			disc.ChoiceD: "Analyzing the impact and planning carefully",
		},
	},
	{
		ID:       18,
		Text:     "To me, a successful project is one that:",
		Category: CategoryWork,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Meets or exceeds the targets that were set",
			disc.ChoiceB: "Is carried out with enthusiasm and collaboration",
			disc.ChoiceC: "Keeps everyone satisfied and engaged",
			disc.ChoiceD: "Is executed with excellence and without errors",
		},
	},

	// Leadership & decision-making (19-24)
	{
		ID:       19,
		Text:     "My leadership style is:",
		Category: CategoryLeadership,
		Weight:   5,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Authoritative and results-driven",
			disc.ChoiceB: "Inspiring and visionary",
			disc.ChoiceC: "Participative and supportive",
			disc.ChoiceD: "Analytical and data-driven",
		},
	},
	{
		ID:       20,
		Text:     "When making important decisions, I:",
		Category: CategoryLeadership,
		Weight:   5,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Decide quickly based on intuition",
			disc.ChoiceB: "Gather input from the team before deciding",
			disc.ChoiceC: "Consider the impact on everyone involved",
			disc.ChoiceD: "Analyze every option systematically",
		},
	},
	{
		ID:       21,
		Text:     "I deal with conflicts in the team by:",
		Category: CategoryLeadership,
		Weight:   5,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Stepping in directly to resolve them",
			disc.ChoiceB: "Facilitating dialogue between the parties",
			disc.ChoiceC: "Looking for compromises that please everyone",
			disc.ChoiceD: "Analyzing the facts before mediating",
		},
	},
	{
		ID:       22,
		Text:     "To motivate my team, I:",
		Category: CategoryLeadership,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Set challenging goals",
			disc.ChoiceB: "Celebrate wins and recognize contributions",
			disc.ChoiceC: "Create a safe and welcoming environment",
			disc.ChoiceD: "Value quality and professional growth",
		},
	},
	{
		ID:       23,
		Text:     "My approach to risk is:",
		Category: CategoryLeadership,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "I accept calculated risks for big results",
			disc.ChoiceB: "I am optimistic about new opportunities",
			disc.ChoiceC: "I prefer to avoid unnecessary risks",
			disc.ChoiceD: "I evaluate carefully before committing",
		},
	},
	{
		ID:       24,
		Text:     "I evaluate the team's performance based on:",
		Category: CategoryLeadership,
		Weight:   4,
		Options: map[disc.ChoiceKey]string{
			disc.ChoiceA: "Results achieved and targets met",
			disc.ChoiceB: "Team engagement and collaboration",
			disc.ChoiceC: "Member well-being and satisfaction",
			disc.ChoiceD: "Quality and precision of the delivered work",
		},
	},
}
