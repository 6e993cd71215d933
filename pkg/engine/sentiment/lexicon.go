package sentiment

// lexicon is an embedded AFINN-style valence table (-5..5), trimmed to
// vocabulary that actually occurs in mood reflections. Keeping it local
// avoids a model download and keeps scoring deterministic across runs.
var lexicon = map[string]int{
	// strongly negative
	"awful":      -3,
	"terrible":   -3,
	"horrible":   -3,
	"devastated": -4,
	"miserable":  -3,
	"hopeless":   -4,
	"worthless":  -4,
	"suicidal":   -5,
	"hate":       -3,
	"hated":      -3,
	"despair":    -3,
	"dread":      -3,
	"panic":      -3,
	"terrified":  -4,
	"nightmare":  -3,
	"unbearable": -3,
	"crushed":    -3,
	"broken":     -2,
	"ashamed":    -3,
	"humiliated": -3,
	"disgusted":  -3,
	"furious":    -3,
	"rage":       -3,

	// negative
	"sad":           -2,
	"unhappy":       -2,
	"depressed":     -2,
	"anxious":       -2,
	"anxiety":       -2,
	"worried":       -2,
	"worry":         -2,
	"stressed":      -2,
	"stress":        -2,
	"stressful":     -2,
	"overwhelmed":   -2,
	"exhausted":     -2,
	"drained":       -2,
	"tired":         -1,
	"lonely":        -2,
	"alone":         -1,
	"angry":         -2,
	"anger":         -2,
	"annoyed":       -2,
	"irritated":     -2,
	"frustrated":    -2,
	"frustrating":   -2,
	"upset":         -2,
	"hurt":          -2,
	"pain":          -2,
	"painful":       -2,
	"cry":           -1,
	"crying":        -2,
	"cried":         -2,
	"fear":          -2,
	"afraid":        -2,
	"scared":        -2,
	"nervous":       -2,
	"guilty":        -2,
	"guilt":         -2,
	"regret":        -2,
	"jealous":       -2,
	"bitter":        -2,
	"gloomy":        -2,
	"grief":         -2,
	"mourning":      -2,
	"sick":          -2,
	"ill":           -2,
	"ache":          -2,
	"headache":      -2,
	"insomnia":      -2,
	"restless":      -2,
	"struggle":      -2,
	"struggling":    -2,
	"failed":        -2,
	"failure":       -2,
	"fail":          -2,
	"lost":          -1,
	"losing":        -1,
	"worse":         -2,
	"worst":         -3,
	"bad":           -2,
	"rough":         -1,
	"hard":          -1,
	"difficult":     -1,
	"tough":         -1,
	"heavy":         -1,
	"numb":          -2,
	"empty":         -1,
	"stuck":         -1,
	"bored":         -1,
	"boring":        -1,
	"disappointed":  -2,
	"disappointing": -2,
	"argument":      -2,
	"fight":         -1,
	"fought":        -1,
	"conflict":      -2,
	"tense":         -1,
	"tension":       -1,
	"pressure":      -1,
	"deadline":      -1,
	"burnout":       -2,
	"mess":          -1,
	"chaos":         -2,
	"doubt":         -1,
	"doubts":        -1,
	"insecure":      -2,
	"uncomfortable": -1,
	"awkward":       -1,

	// positive
	"good":         2,
	"great":        3,
	"nice":         2,
	"fine":         1,
	"okay":         1,
	"ok":           1,
	"better":       2,
	"best":         3,
	"happy":        3,
	"happiness":    3,
	"joy":          3,
	"joyful":       3,
	"glad":         2,
	"cheerful":     2,
	"content":      2,
	"calm":         2,
	"peaceful":     2,
	"peace":        2,
	"relaxed":      2,
	"relaxing":     2,
	"relief":       2,
	"relieved":     2,
	"rested":       2,
	"refreshed":    2,
	"energized":    2,
	"energetic":    2,
	"motivated":    2,
	"inspired":     2,
	"hopeful":      2,
	"hope":         2,
	"optimistic":   2,
	"confident":    2,
	"proud":        2,
	"accomplished": 2,
	"productive":   2,
	"progress":     2,
	"success":      2,
	"successful":   2,
	"win":          2,
	"won":          2,
	"achievement":  2,
	"grateful":     3,
	"gratitude":    3,
	"thankful":     2,
	"blessed":      2,
	"love":         3,
	"loved":        3,
	"loving":       2,
	"laugh":        2,
	"laughed":      2,
	"laughing":     2,
	"laughter":     2,
	"smile":        2,
	"smiled":       2,
	"fun":          2,
	"funny":        2,
	"enjoy":        2,
	"enjoyed":      2,
	"enjoying":     2,
	"pleasant":     2,
	"wonderful":    3,
	"amazing":      3,
	"awesome":      3,
	"fantastic":    3,
	"excellent":    3,
	"beautiful":    3,
	"lovely":       2,
	"excited":      3,
	"exciting":     2,
	"thrilled":     4,
	"delighted":    3,
	"comfort":      2,
	"comfortable":  2,
	"cozy":         2,
	"warm":         1,
	"sunny":        2,
	"fresh":        1,
	"strong":       2,
	"stronger":     2,
	"healthy":      2,
	"healed":       2,
	"improving":    2,
	"improved":     2,
	"improvement":  2,
	"connected":    2,
	"supported":    2,
	"support":      2,
	"kind":         2,
	"kindness":     2,
	"friend":       1,
	"friends":      1,
	"celebrated":   3,
	"celebration":  3,
}
