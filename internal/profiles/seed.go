package profiles

// seedProfiles defines the knowledge base: the four pure archetypes
// plus the four tabulated combined forms.
var seedProfiles = []Characteristics{
	{
		Code:        "D",
		Name:        "Dominance",
		Description: "Direct, assertive and results-oriented. Enjoys challenges and takes calculated risks.",
		Strengths: []string{
			"Makes quick, firm decisions",
			"Focused on goals and results",
			"Confident and assertive",
			"Faces challenges head-on",
			"Natural leadership ability",
			"Accepts responsibility readily",
			"Constantly pushes for innovation",
			"Competitive and determined",
		},
		Challenges: []string{
			"Can come across as aggressive",
			"Impatient with slow processes",
			"Pays little attention to detail",
			"Struggles to hand over control",
			"May overlook emotional aspects",
			"Tends to be too blunt",
			"Resists authority",
			"Can intimidate more sensitive people",
		},
		Motivations: []string{
			"Reaching challenging goals",
			"Having autonomy and control",
			"Winning competitions",
			"Solving complex problems",
			"Leading and influencing",
			"Tangible results",
			"Recognition for achievements",
		},
		Fears: []string{
			"Losing control",
			"Being seen as weak",
			"Failing publicly",
			"Routine and stagnation",
			"Depending too much on others",
		},
		WorkStyle: WorkStyle{
			Pace:           PaceFast,
			Focus:          FocusTask,
			Approach:       ApproachActive,
			DecisionMaking: DecisionFast,
		},
		Communication: Communication{
			Style: "Direct, objective and results-focused",
			Preferences: []string{
				"Short conversations that get to the point",
				"Focus on the what and the when",
				"Concise written communication",
				"Action-oriented discussions",
			},
			Avoid: []string{
				"Too much detail",
				"Long social chit-chat",
				"Drawn-out indecision",
				"Excessive formality",
			},
		},
		Leadership: Leadership{
			Style: "Authoritative and results-oriented",
			Strengths: []string{
				"Sets a clear direction",
				"Makes the hard calls",
				"Keeps the focus on goals",
				"Inspires action and momentum",
			},
			DevelopmentAreas: []string{
				"Develop empathy",
				"Listen to the team more",
				"Delegate with trust",
				"Value process",
			},
		},
		IdealEnvironment: []string{
			"Clear, challenging goals",
			"Autonomy to decide",
			"Rewards tied to results",
			"A competitive setting",
			"Opportunities to lead",
			"Constant challenges",
		},
		GrowthTips: []string{
			"Practice patience and active listening",
			"Consider the emotional impact of decisions",
			"Delegate more and trust the team",
			"Build attention to detail",
			"Balance results with relationships",
			"Take feedback without getting defensive",
		},
		Examples: []string{
			"Steve Jobs",
			"Margaret Thatcher",
			"Gordon Ramsay",
		},
	},
	{
		Code:        "I",
		Name:        "Influence",
		Description: "Communicative, enthusiastic and persuasive. Enjoys engaging and inspiring people.",
		Strengths: []string{
			"Excellent communicator",
			"Enthusiastic and motivating",
			"Builds connections easily",
			"Optimistic and positive",
			"Creative and innovative",
			"Inspires and energizes teams",
			"Flexible and adaptable",
			"Natural gift for persuasion",
		},
		Challenges: []string{
			"Can be disorganized",
			"Struggles with follow-through",
			"Avoids confrontation",
			"Makes emotional decisions",
			"Can be shallow on detail",
			"Seeks approval too much",
			"Finds it hard to say no",
			"May promise more than is possible",
		},
		Motivations: []string{
			"Social recognition",
			"Interaction with people",
			"A fun environment",
			"Approval and praise",
			"Freedom of expression",
			"Creative opportunities",
			"Popularity",
		},
		Fears: []string{
			"Social rejection",
			"Being ignored",
			"Cold, impersonal environments",
			"Losing popularity",
			"Working in isolation",
		},
		WorkStyle: WorkStyle{
			Pace:           PaceFast,
			Focus:          FocusPerson,
			Approach:       ApproachActive,
			DecisionMaking: DecisionConsultative,
		},
		Communication: Communication{
			Style: "Expressive, friendly and inspiring",
			Preferences: []string{
				"Face-to-face conversations",
				"Storytelling and examples",
				"Creative discussions",
				"Frequent positive feedback",
			},
			Avoid: []string{
				"Cold, formal communication",
				"Too much technical data",
				"Public criticism",
				"Silent environments",
			},
		},
		Leadership: Leadership{
			Style: "Inspiring and visionary",
			Strengths: []string{
				"Motivates and energizes the team",
				"Creates a positive atmosphere",
				"Promotes collaboration",
				"Communicates vision with passion",
			},
			DevelopmentAreas: []string{
				"Improve organization",
				"Focus on details",
				"Deliver difficult feedback",
				"Set clear boundaries",
			},
		},
		IdealEnvironment: []string{
			"Teamwork",
			"Frequent social interaction",
			"Public recognition",
			"Variety of tasks",
			"A relaxed atmosphere",
			"Creative freedom",
		},
		GrowthTips: []string{
			"Build discipline and organization",
			"Practice active listening",
			"Follow up consistently",
			"Learn to say no",
			"Go for depth, not just breadth",
			"Accept constructive criticism",
		},
		Examples: []string{
			"Oprah Winfrey",
			"Ellen DeGeneres",
			"Robin Williams",
			"Tony Robbins",
		},
	},
	{
		Code:        "S",
		Name:        "Steadiness",
		Description: "Patient, loyal and cooperative. Values harmony and long-lasting relationships.",
		Strengths: []string{
			"Extremely dependable",
			"Patient and calm",
			"A good listener",
			"Loyal to the team",
			"Keeps the peace",
			"Consistent and predictable",
			"Empathetic and understanding",
			"Excellent team player",
		},
		Challenges: []string{
			"Resists change",
			"Avoids conflict",
			"Finds it hard to say no",
			"Can be indecisive",
			"Slow to act",
			"Holds on to resentment",
			"May settle into comfort zones",
			"Struggles to put own needs first",
		},
		Motivations: []string{
			"Stability and security",
			"Harmony in the environment",
			"Long-lasting relationships",
			"Helping others",
			"Personal recognition",
			"A predictable environment",
			"Meaningful work",
		},
		Fears: []string{
			"Sudden change",
			"Conflict and confrontation",
			"Losing security",
			"Letting down people they care about",
			"Chaotic environments",
		},
		WorkStyle: WorkStyle{
			Pace:           PaceSlow,
			Focus:          FocusPerson,
			Approach:       ApproachReflective,
			DecisionMaking: DecisionDeliberate,
		},
		Communication: Communication{
			Style: "Calm, kind and patient",
			Preferences: []string{
				"One-on-one conversations",
				"A respectful, friendly tone",
				"Time to process information",
				"A safe space to speak up",
			},
			Avoid: []string{
				"Pressure for snap decisions",
				"Aggressive confrontation",
				"Change without warning",
				"A hostile, competitive setting",
			},
		},
		Leadership: Leadership{
			Style: "Participative and supportive",
			Strengths: []string{
				"Creates a welcoming environment",
				"Builds loyalty",
				"Listens genuinely",
				"Mediates conflicts",
			},
			DevelopmentAreas: []string{
				"Decide faster",
				"Handle confrontation",
				"Drive change",
				"Set firm boundaries",
			},
		},
		IdealEnvironment: []string{
			"An established routine",
			"A collaborative team",
			"A conflict-free environment",
			"Sincere recognition",
			"Adequate time for tasks",
			"Long-term relationships",
		},
		GrowthTips: []string{
			"Practice assertiveness",
			"Embrace change gradually",
			"Voice opinions more openly",
			"Set healthy boundaries",
			"Build tolerance for conflict",
			"Accept that you cannot please everyone",
		},
		Examples: []string{
			"Mother Teresa",
			"Jimmy Carter",
			"Fred Rogers",
			"Keanu Reeves",
		},
	},
	{
		Code:        "C",
		Name:        "Conformity",
		Description: "Analytical, precise and meticulous. Values quality and excellence.",
		Strengths: []string{
			"Exceptional attention to detail",
			"Analytical and logical",
			"High quality standards",
			"Organized and systematic",
			"Follows rules and procedures",
			"Researches before acting",
			"Precision and accuracy",
			"Critical thinking",
		},
		Challenges: []string{
			"Excessive perfectionism",
			"Analysis paralysis",
			"Overly critical",
			"Uncomfortable with ambiguity",
			"Resists unplanned change",
			"Can be inflexible",
			"Avoids risk",
			"Finds it hard to express emotion",
		},
		Motivations: []string{
			"Quality and excellence",
			"Precision and accuracy",
			"Deep understanding",
			"Order and organization",
			"Work done properly",
			"Recognition for expertise",
			"A structured environment",
		},
		Fears: []string{
			"Making mistakes",
			"Criticism of their work",
			"Absence of standards",
			"Chaos and disorganization",
			"Being seen as incompetent",
		},
		WorkStyle: WorkStyle{
			Pace:           PaceSlow,
			Focus:          FocusTask,
			Approach:       ApproachReflective,
			DecisionMaking: DecisionDeliberate,
		},
		Communication: Communication{
			Style: "Formal, precise and fact-based",
			Preferences: []string{
				"Detailed written communication",
				"Data and evidence",
				"Time for analysis",
				"Appropriate formality",
			},
			Avoid: []string{
				"Rushed decisions",
				"Vague information",
				"Excessive emotion",
				"Missing documentation",
			},
		},
		Leadership: Leadership{
			Style: "Analytical and data-driven",
			Strengths: []string{
				"Guarantees quality",
				"Makes well-founded decisions",
				"Builds efficient processes",
				"Maintains high standards",
			},
			DevelopmentAreas: []string{
				"Accept imperfection",
				"Decide faster",
				"Develop flexibility",
				"Express emotion",
			},
		},
		IdealEnvironment: []string{
			"Clear, defined processes",
			"Time for research",
			"Quality standards",
			"An organized workplace",
			"Recognition for precision",
			"Specialized work",
		},
		GrowthTips: []string{
			"Practice good-enough over perfect",
			"Build tolerance for mistakes",
			"Speed up decision-making",
			"Accept ambiguity",
			"Express more emotion",
			"Delegate the details occasionally",
		},
		Examples: []string{
			"Bill Gates",
			"Albert Einstein",
			"Marie Curie",
		},
	},

	// Combined archetypes
	{
		Code:        "D-I",
		Name:        "Dominance-Influence",
		Description: "Charismatic, results-oriented leader. Combines assertiveness with social skill.",
		Strengths: []string{
			"Charismatic leadership",
			"Communicates vision with passion",
			"Makes decisions and mobilizes people",
			"Faces challenges with optimism",
			"Persuasive and assertive",
			"Inspires immediate action",
		},
		Challenges: []string{
			"Can dominate groups",
			"Impatient with detail",
			"Impulsive decisions",
			"May overlook technical aspects",
		},
		Motivations: []string{
			"Leading and inspiring",
			"Reaching goals with the team",
			"Public recognition",
			"Social challenges",
		},
		Fears: []string{
			"Losing influence",
			"Public failure",
			"Social rejection",
		},
		WorkStyle: WorkStyle{
			Pace:           PaceFast,
			Focus:          FocusBalanced,
			Approach:       ApproachActive,
			DecisionMaking: DecisionFast,
		},
		Communication: Communication{
			Style: "Direct, enthusiastic and persuasive",
			Preferences: []string{
				"High-impact presentations",
				"Dynamic discussions",
				"Energized meetings",
			},
			Avoid: []string{
				"Heavy bureaucracy",
				"Apathetic environments",
			},
		},
		Leadership: Leadership{
			Style: "Visionary and mobilizing",
			Strengths: []string{
				"Communicates vision clearly",
				"Inspires and energizes",
				"Decides quickly",
			},
			DevelopmentAreas: []string{
				"Listen to the team more",
				"Attention to detail",
				"Patience with process",
			},
		},
		IdealEnvironment: []string{
			"Leadership challenges",
			"Interaction with stakeholders",
			"Autonomy to decide",
			"Visible recognition",
		},
		GrowthTips: []string{
			"Develop active listening",
			"Value technical expertise",
			"Practice follow-through",
			"Balance action with reflection",
		},
		Examples: []string{
			"Richard Branson",
			"Gary Vaynerchuk",
			"Tony Robbins",
		},
	},
	{
		Code:        "D-C",
		Name:        "Dominance-Conformity",
		Description: "Strategic, analytical leader. Combines a results focus with attention to detail.",
		Strengths: []string{
			"Data-driven decisions",
			"Strategic planning",
			"Results with quality",
			"Critical thinking",
			"Systematic problem solving",
		},
		Challenges: []string{
			"Can be very critical",
			"Struggles with emotional aspects",
			"Authoritarian perfectionism",
			"Impatient with imprecision",
		},
		Motivations: []string{
			"Excellence and efficiency",
			"Control and quality",
			"Measurable results",
			"Recognized expertise",
		},
		Fears: []string{
			"Critical mistakes",
			"Losing control of quality",
			"Incompetence",
		},
		WorkStyle: WorkStyle{
			Pace:           PaceModerate,
			Focus:          FocusTask,
			Approach:       ApproachReflective,
			DecisionMaking: DecisionDeliberate,
		},
		Communication: Communication{
			Style: "Direct, precise and fact-based",
			Preferences: []string{
				"Data and metrics",
				"Detailed analysis",
				"Objective communication",
			},
			Avoid: []string{
				"Imprecision",
				"Unfounded decisions",
				"Excessive emotion",
			},
		},
		Leadership: Leadership{
			Style: "Strategic and analytical",
			Strengths: []string{
				"Robust planning",
				"Well-founded decisions",
				"High standards",
			},
			DevelopmentAreas: []string{
				"Develop empathy",
				"Flexibility",
				"Accept good-enough",
			},
		},
		IdealEnvironment: []string{
			"Clear, measurable goals",
			"Defined processes",
			"Technical autonomy",
			"Recognition for expertise",
		},
		GrowthTips: []string{
			"Value the human side",
			"Practice delegation",
			"Develop patience",
			"Accept imperfection",
		},
		Examples: []string{
			"Jeff Bezos",
			"Larry Page",
			"Warren Buffett",
		},
	},
	{
		Code:        "I-S",
		Name:        "Influence-Steadiness",
		Description: "Friendly, empathetic collaborator. Values relationships and harmony.",
		Strengths: []string{
			"Excellent interpersonal skills",
			"Creates a welcoming environment",
			"Empathetic and understanding",
			"Genuine loyalty",
			"Mediates conflicts",
		},
		Challenges: []string{
			"Finds it hard to say no",
			"Avoids necessary confrontation",
			"Can be indecisive",
			"Seeks approval too much",
		},
		Motivations: []string{
			"Harmony and connection",
			"Helping people",
			"Heartfelt recognition",
			"A positive environment",
		},
		Fears: []string{
			"Rejection",
			"Conflict",
			"Loneliness",
			"Sudden change",
		},
		WorkStyle: WorkStyle{
			Pace:           PaceModerate,
			Focus:          FocusPerson,
			Approach:       ApproachActive,
			DecisionMaking: DecisionConsultative,
		},
		Communication: Communication{
			Style: "Friendly, warm and empathetic",
			Preferences: []string{
				"Personal conversations",
				"A welcoming atmosphere",
				"Positive feedback",
			},
			Avoid: []string{
				"Harsh criticism",
				"Hostile environments",
				"Excessive pressure",
			},
		},
		Leadership: Leadership{
			Style: "Collaborative and welcoming",
			Strengths: []string{
				"Builds loyalty",
				"Creates cohesion",
				"Listens genuinely",
			},
			DevelopmentAreas: []string{
				"Make the hard calls",
				"Give direct feedback",
				"Set boundaries",
			},
		},
		IdealEnvironment: []string{
			"Teamwork",
			"Personal recognition",
			"Stability",
			"A friendly atmosphere",
		},
		GrowthTips: []string{
			"Develop assertiveness",
			"Practice direct feedback",
			"Set priorities",
			"Accept healthy conflict",
		},
		Examples: []string{
			"Ellen DeGeneres",
			"Fred Rogers",
			"Jennifer Aniston",
		},
	},
	{
		Code:        "S-C",
		Name:        "Steadiness-Conformity",
		Description: "Dependable, meticulous professional. Values quality and consistency.",
		Strengths: []string{
			"Extremely dependable",
			"High-quality work",
			"Exemplary consistency",
			"Attention to detail",
			"Follows process faithfully",
		},
		Challenges: []string{
			"Resists change",
			"Can be overly cautious",
			"Slow to decide",
			"Avoids necessary risks",
		},
		Motivations: []string{
			"Stability and quality",
			"Work done properly",
			"Recognition for consistency",
			"A structured environment",
		},
		Fears: []string{
			"Mistakes and failures",
			"Abrupt change",
			"Chaos and disorganization",
			"Criticism of their work",
		},
		WorkStyle: WorkStyle{
			Pace:           PaceSlow,
			Focus:          FocusTask,
			Approach:       ApproachReflective,
			DecisionMaking: DecisionDeliberate,
		},
		Communication: Communication{
			Style: "Calm, precise and respectful",
			Preferences: []string{
				"Clear instructions",
				"Detailed documentation",
				"Time to process",
			},
			Avoid: []string{
				"Pressure for speed",
				"Change without warning",
				"Ambiguity",
			},
		},
		Leadership: Leadership{
			Style: "Supportive and systematic",
			Strengths: []string{
				"Guarantees quality",
				"Builds stable processes",
				"Develops trust",
			},
			DevelopmentAreas: []string{
				"Speed up decisions",
				"Embrace change",
				"Take calculated risks",
			},
		},
		IdealEnvironment: []string{
			"Established routines",
			"Quality standards",
			"An organized workplace",
			"Adequate time",
		},
		GrowthTips: []string{
			"Practice flexibility",
			"Accept good-enough",
			"Build tolerance for change",
			"Decide faster",
		},
		Examples: []string{
			"Tim Cook",
			"Angela Merkel",
			"Satya Nadella",
		},
	},
}
