package catalog

import "assessment-service/internal/models"

// DefaultThemes returns the built-in theme set used to seed an empty remote
// store. It is the same canonical shape the remote load produces, so the seed
// and remote paths can never diverge.
func DefaultThemes() []models.Theme {
	return []models.Theme{
		{
			ID:       "general",
			Position: 0,
			Title: models.LocalizedText{
				EN: "General Well-being",
				NL: "Algemeen Welzijn",
			},
			Description: models.LocalizedText{
				EN: "This section assesses your child's overall health, energy levels, and general happiness.",
				NL: "Dit onderdeel beoordeelt de algemene gezondheid, energieniveau en geluk van uw kind.",
			},
			Icon:  "heart",
			Color: "#4A90E2",
			Tips: models.LocalizedList{
				EN: []string{
					"Establish consistent daily routines for meals, sleep, and play",
					"Ensure your child gets adequate sleep for their age",
					"Provide a balanced diet with plenty of fruits and vegetables",
				},
				NL: []string{
					"Stel consistente dagelijkse routines in voor maaltijden, slaap en spel",
					"Zorg ervoor dat uw kind voldoende slaap krijgt voor zijn/haar leeftijd",
					"Zorg voor een uitgebalanceerd dieet met veel fruit en groenten",
				},
			},
		},
		{
			ID:       "cognitive",
			Position: 1,
			Title: models.LocalizedText{
				EN: "Cognitive Development",
				NL: "Cognitieve Ontwikkeling",
			},
			Description: models.LocalizedText{
				EN: "This section evaluates your child's thinking, learning, problem-solving, and language skills.",
				NL: "Dit onderdeel evalueert het denken, leren, probleemoplossend vermogen en taalvaardigheid van uw kind.",
			},
			Icon:  "brain",
			Color: "#BB6BD9",
			Tips: models.LocalizedList{
				EN: []string{
					"Read to your child daily and discuss the stories",
					"Engage in puzzles and games that encourage problem-solving",
					"Ask open-ended questions to stimulate thinking",
				},
				NL: []string{
					"Lees dagelijks voor aan uw kind en bespreek de verhalen",
					"Doe puzzels en spellen die probleemoplossend denken stimuleren",
					"Stel open vragen om het denken te stimuleren",
				},
			},
		},
		{
			ID:       "physical",
			Position: 2,
			Title: models.LocalizedText{
				EN: "Physical Development",
				NL: "Fysieke Ontwikkeling",
			},
			Description: models.LocalizedText{
				EN: "This section looks at your child's motor skills, coordination, and physical activity levels.",
				NL: "Dit onderdeel kijkt naar de motorische vaardigheden, coördinatie en fysieke activiteit van uw kind.",
			},
			Icon:  "activity",
			Color: "#6FCF97",
			Tips: models.LocalizedList{
				EN: []string{
					"Encourage at least 60 minutes of physical activity daily",
					"Practice age-appropriate fine motor activities like drawing or building",
					"Ensure regular outdoor play time",
				},
				NL: []string{
					"Stimuleer dagelijks minstens 60 minuten fysieke activiteit",
					"Oefen leeftijdsgeschikte fijne motoriek zoals tekenen of bouwen",
					"Zorg voor regelmatige buitenspeeltijd",
				},
			},
		},
		{
			ID:       "socialEmotional",
			Position: 3,
			Title: models.LocalizedText{
				EN: "Social-Emotional Development",
				NL: "Sociaal-Emotionele Ontwikkeling",
			},
			Description: models.LocalizedText{
				EN: "This section assesses your child's ability to understand and manage emotions, relationships, and social interactions.",
				NL: "Dit onderdeel beoordeelt het vermogen van uw kind om emoties, relaties en sociale interacties te begrijpen en te beheren.",
			},
			Icon:  "users",
			Color: "#F2994A",
			Tips: models.LocalizedList{
				EN: []string{
					"Help your child name and express their emotions",
					"Create opportunities for social interaction with peers",
					"Model healthy emotional responses and conflict resolution",
				},
				NL: []string{
					"Help uw kind bij het benoemen en uiten van emoties",
					"Creëer mogelijkheden voor sociale interactie met leeftijdsgenoten",
					"Toon gezonde emotionele reacties en conflictoplossing",
				},
			},
		},
	}
}

// DefaultQuestions returns the built-in question set matching DefaultThemes.
// Every question uses a 5-option Likert scale.
func DefaultQuestions() []models.Question {
	return []models.Question{
		{
			ID:       "1",
			ThemeID:  "general",
			Position: 0,
			Text: models.LocalizedText{
				EN: "How would you describe your child's overall energy level?",
				NL: "Hoe zou u het algemene energieniveau van uw kind beschrijven?",
			},
			Options: models.LocalizedList{
				EN: []string{"Very low", "Somewhat low", "Normal", "Somewhat high", "Very high"},
				NL: []string{"Zeer laag", "Enigszins laag", "Normaal", "Enigszins hoog", "Zeer hoog"},
			},
		},
		{
			ID:       "2",
			ThemeID:  "general",
			Position: 1,
			Text: models.LocalizedText{
				EN: "How often does your child complain about physical discomfort?",
				NL: "Hoe vaak klaagt uw kind over fysiek ongemak?",
			},
			Options: models.LocalizedList{
				EN: []string{"Never", "Rarely", "Sometimes", "Often", "Very often"},
				NL: []string{"Nooit", "Zelden", "Soms", "Vaak", "Zeer vaak"},
			},
		},
		{
			ID:       "3",
			ThemeID:  "cognitive",
			Position: 0,
			Text: models.LocalizedText{
				EN: "How well does your child follow multi-step instructions?",
				NL: "Hoe goed volgt uw kind instructies met meerdere stappen?",
			},
			Options: models.LocalizedList{
				EN: []string{"Not at all", "With difficulty", "Moderately well", "Well", "Very well"},
				NL: []string{"Helemaal niet", "Met moeite", "Redelijk goed", "Goed", "Zeer goed"},
			},
		},
		{
			ID:       "4",
			ThemeID:  "cognitive",
			Position: 1,
			Text: models.LocalizedText{
				EN: "How curious is your child about learning new things?",
				NL: "Hoe nieuwsgierig is uw kind naar het leren van nieuwe dingen?",
			},
			Options: models.LocalizedList{
				EN: []string{"Not curious", "Slightly curious", "Moderately curious", "Very curious", "Extremely curious"},
				NL: []string{"Niet nieuwsgierig", "Licht nieuwsgierig", "Matig nieuwsgierig", "Zeer nieuwsgierig", "Extreem nieuwsgierig"},
			},
		},
		{
			ID:       "5",
			ThemeID:  "physical",
			Position: 0,
			Text: models.LocalizedText{
				EN: "How would you rate your child's coordination compared to peers?",
				NL: "Hoe beoordeelt u de coördinatie van uw kind in vergelijking met leeftijdsgenoten?",
			},
			Options: models.LocalizedList{
				EN: []string{"Much worse", "Somewhat worse", "About the same", "Somewhat better", "Much better"},
				NL: []string{"Veel slechter", "Enigszins slechter", "Ongeveer hetzelfde", "Enigszins beter", "Veel beter"},
			},
		},
		{
			ID:       "6",
			ThemeID:  "physical",
			Position: 1,
			Text: models.LocalizedText{
				EN: "How often does your child engage in physical activity?",
				NL: "Hoe vaak doet uw kind aan lichamelijke activiteit?",
			},
			Options: models.LocalizedList{
				EN: []string{"Rarely", "A few times a month", "A few times a week", "Daily", "Multiple times daily"},
				NL: []string{"Zelden", "Een paar keer per maand", "Een paar keer per week", "Dagelijks", "Meerdere keren per dag"},
			},
		},
		{
			ID:       "7",
			ThemeID:  "socialEmotional",
			Position: 0,
			Text: models.LocalizedText{
				EN: "How well does your child manage frustration?",
				NL: "Hoe goed kan uw kind omgaan met frustratie?",
			},
			Options: models.LocalizedList{
				EN: []string{"Very poorly", "Poorly", "Moderately well", "Well", "Very well"},
				NL: []string{"Zeer slecht", "Slecht", "Redelijk goed", "Goed", "Zeer goed"},
			},
		},
		{
			ID:       "8",
			ThemeID:  "socialEmotional",
			Position: 1,
			Text: models.LocalizedText{
				EN: "How comfortable is your child in social situations with peers?",
				NL: "Hoe comfortabel is uw kind in sociale situaties met leeftijdsgenoten?",
			},
			Options: models.LocalizedList{
				EN: []string{"Very uncomfortable", "Somewhat uncomfortable", "Neutral", "Somewhat comfortable", "Very comfortable"},
				NL: []string{"Zeer oncomfortabel", "Enigszins oncomfortabel", "Neutraal", "Enigszins comfortabel", "Zeer comfortabel"},
			},
		},
	}
}
