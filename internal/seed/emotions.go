package seed

import (
	"strings"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

// Key is the remote catalog key for a named emotion.
func Key(name string) string { return strings.ToLower(name) }

// ReferenceEmotions returns the fixed reference catalog: 25 emotions per
// category, 100 in total, unique by name. The local seeding short-circuit
// compares row counts against len(ReferenceEmotions()), so the table size is
// the single source of truth.
func ReferenceEmotions() []internal.Emotion {
	return referenceEmotions
}

func referenceByKey() map[string]internal.Emotion {
	m := make(map[string]internal.Emotion, len(referenceEmotions))
	for _, e := range referenceEmotions {
		m[Key(e.Name)] = e
	}
	return m
}

func hep(name, definition string, energy int) internal.Emotion {
	return internal.Emotion{Name: name, Category: internal.CategoryHighEnergyPleasant, Definition: definition, EnergyLevel: energy}
}

func heu(name, definition string, energy int) internal.Emotion {
	return internal.Emotion{Name: name, Category: internal.CategoryHighEnergyUnpleasant, Definition: definition, EnergyLevel: energy}
}

func lep(name, definition string, energy int) internal.Emotion {
	return internal.Emotion{Name: name, Category: internal.CategoryLowEnergyPleasant, Definition: definition, EnergyLevel: energy}
}

func leu(name, definition string, energy int) internal.Emotion {
	return internal.Emotion{Name: name, Category: internal.CategoryLowEnergyUnpleasant, Definition: definition, EnergyLevel: energy}
}

var referenceEmotions = []internal.Emotion{
	// High energy, pleasant
	hep("Excited", "Feeling very enthusiastic and eager", 10),
	hep("Joyful", "Feeling happiness and delight", 9),
	hep("Proud", "Feeling deep satisfaction with achievements", 8),
	hep("Optimistic", "Feeling hopeful about the future", 7),
	hep("Cheerful", "Feeling noticeably happy and positive", 6),
	hep("Energetic", "Feeling full of energy and vigor", 10),
	hep("Enthusiastic", "Feeling intense and eager interest", 9),
	hep("Elated", "Feeling extremely happy and exhilarated", 10),
	hep("Inspired", "Feeling mentally stimulated to do something", 8),
	hep("Passionate", "Feeling intense desire or enthusiasm", 9),
	hep("Confident", "Feeling self-assured and certain", 7),
	hep("Accomplished", "Feeling successful completion of something", 8),
	hep("Adventurous", "Feeling willing to take risks and try new things", 8),
	hep("Playful", "Feeling full of fun and high spirits", 7),
	hep("Amused", "Feeling entertained or finding something funny", 6),
	hep("Ecstatic", "Feeling overwhelming happiness and joy", 10),
	hep("Amazed", "Feeling great surprise or wonder", 9),
	hep("Astonished", "Feeling extremely surprised", 9),
	hep("Eager", "Feeling keen interest, enthusiasm, or impatience", 8),
	hep("Hopeful", "Feeling optimistic about a future outcome", 7),
	hep("Thrilled", "Feeling extremely excited and pleased", 10),
	hep("Delighted", "Feeling great pleasure", 9),
	hep("Jubilant", "Feeling extreme joy, especially because of success", 10),
	hep("Lively", "Feeling full of life and energy", 8),
	hep("Motivated", "Feeling eager to act or work", 8),

	// High energy, unpleasant
	heu("Angry", "Feeling strong displeasure or hostility", 10),
	heu("Anxious", "Feeling worried or nervous", 9),
	heu("Frustrated", "Feeling upset and annoyed at unresolved problems", 8),
	heu("Stressed", "Feeling mental or emotional strain", 7),
	heu("Overwhelmed", "Feeling buried under too many tasks or emotions", 6),
	heu("Furious", "Feeling extremely angry", 10),
	heu("Enraged", "Feeling intense anger", 10),
	heu("Outraged", "Feeling extreme anger from perceived injustice", 10),
	heu("Irritated", "Feeling annoyed or slightly angry", 7),
	heu("Agitated", "Feeling troubled, nervous, or upset", 8),
	heu("Nervous", "Feeling easily agitated or worried", 8),
	heu("Panicked", "Feeling sudden uncontrollable fear or anxiety", 10),
	heu("Afraid", "Feeling fear or apprehension", 9),
	heu("Terrified", "Feeling extreme fear", 10),
	heu("Shocked", "Feeling sudden surprise or alarm", 9),
	heu("Disgusted", "Feeling strong aversion or repulsion", 8),
	heu("Resentful", "Feeling bitter or indignant", 7),
	heu("Jealous", "Feeling resentment toward others for their advantages", 8),
	heu("Envious", "Feeling discontent with someone's position or possessions", 7),
	heu("Impatient", "Feeling restless or eager for something to happen", 7),
	heu("Indignant", "Feeling anger at perceived unfair treatment", 8),
	heu("Restless", "Feeling unable to rest or relax", 7),
	heu("Alarmed", "Feeling frightened, disturbed, or in danger", 9),
	heu("Disturbed", "Feeling troubled or uneasy", 7),
	heu("Perplexed", "Feeling confused or puzzled", 6),

	// Low energy, pleasant
	lep("Calm", "Feeling tranquil and peaceful", 4),
	lep("Content", "Feeling satisfied with current state", 3),
	lep("Relaxed", "Feeling free from tension", 2),
	lep("Grateful", "Feeling thankful and appreciative", 4),
	lep("Serene", "Feeling clear and calm", 1),
	lep("Peaceful", "Feeling free from disturbance", 2),
	lep("Satisfied", "Feeling content with fulfillment of desire", 3),
	lep("At Ease", "Feeling comfortable and relaxed", 2),
	lep("Fulfilled", "Feeling satisfied or happy because of fully developing one's potential", 4),
	lep("Comforted", "Feeling consoled in a time of distress", 3),
	lep("Cozy", "Feeling comfortable, warm, and relaxed", 2),
	lep("Secure", "Feeling safe and free from worry", 3),
	lep("Tranquil", "Feeling free from disturbance; calm", 1),
	lep("Carefree", "Feeling free from anxiety or responsibility", 3),
	lep("Relieved", "Feeling reassured and free from anxiety or distress", 3),
	lep("Blessed", "Feeling a deep sense of well-being or grace", 4),
	lep("Balanced", "Feeling stable or in equilibrium", 3),
	lep("Loved", "Feeling deep affection from others", 4),
	lep("Appreciated", "Feeling valued or recognized", 4),
	lep("Refreshed", "Feeling revitalized or reinvigorated", 4),
	lep("Thankful", "Feeling gratitude for what one has", 4),
	lep("Mellow", "Feeling softened by age or experience; gentle", 2),
	lep("Nostalgic", "Feeling a sentimental longing for the past", 3),
	lep("Tender", "Feeling gentle, loving, or kind", 3),
	lep("Compassionate", "Feeling concern for the sufferings of others", 4),

	// Low energy, unpleasant
	leu("Sad", "Feeling sorrow or unhappiness", 4),
	leu("Tired", "Feeling in need of rest or sleep", 3),
	leu("Bored", "Feeling weary from lack of interest", 2),
	leu("Disappointed", "Feeling let down or discouraged", 4),
	leu("Lonely", "Feeling isolated or without companionship", 3),
	leu("Depressed", "Feeling severe despondency and dejection", 4),
	leu("Gloomy", "Feeling dark or depressed", 4),
	leu("Miserable", "Feeling wretchedly unhappy or uncomfortable", 4),
	leu("Hopeless", "Feeling despair; having no expectation of good", 4),
	leu("Apathetic", "Feeling lack of interest, enthusiasm, or concern", 2),
	leu("Empty", "Feeling a lack of meaning or purpose", 3),
	leu("Exhausted", "Feeling extremely tired", 3),
	leu("Drained", "Feeling depleted of energy or resources", 3),
	leu("Defeated", "Feeling beaten or having lost", 4),
	leu("Neglected", "Feeling not receiving proper care or attention", 3),
	leu("Rejected", "Feeling dismissed or refused", 4),
	leu("Isolated", "Feeling alone or separated from others", 3),
	leu("Helpless", "Feeling unable to help oneself; powerless", 4),
	leu("Guilty", "Feeling responsible for wrongdoing", 4),
	leu("Ashamed", "Feeling embarrassed or guilty due to actions", 4),
	leu("Regretful", "Feeling sad, repentant, or disappointed over something", 4),
	leu("Homesick", "Feeling longing for home during absence from it", 3),
	leu("Grieving", "Feeling intense sorrow, especially from loss", 4),
	leu("Insecure", "Feeling uncertain or anxious about oneself", 3),
	leu("Embarrassed", "Feeling self-conscious, ashamed, or awkward", 3),
}
