package assessment

// Option is one selectable answer with its score contribution
type Option struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Question is one screening question with its fixed option set
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Questions is the fixed screening bank. Order and wording are part of
// the scoring contract: answer slices are positional and concern
// summaries quote the question stems.
var Questions = []Question{
	{
		ID:       1,
		Question: "Over the past two weeks, how often have you been bothered by feeling down, depressed, or hopeless?",
		Options: []Option{
			{Text: "Not at all", Value: 0},
			{Text: "Several days", Value: 1},
			{Text: "More than half the days", Value: 2},
			{Text: "Nearly every day", Value: 3},
		},
	},
	{
		ID:       2,
		Question: "Over the past two weeks, how often have you had little interest or pleasure in doing things?",
		Options: []Option{
			{Text: "Not at all", Value: 0},
			{Text: "Several days", Value: 1},
			{Text: "More than half the days", Value: 2},
			{Text: "Nearly every day", Value: 3},
		},
	},
	{
		ID:       3,
		Question: "How would you rate your overall energy levels recently?",
		Options: []Option{
			{Text: "Very high energy", Value: 0},
			{Text: "Good energy levels", Value: 1},
			{Text: "Low energy", Value: 2},
			{Text: "Very low or no energy", Value: 3},
		},
	},
	{
		ID:       4,
		Question: "How often do you feel anxious or worried?",
		Options: []Option{
			{Text: "Rarely or never", Value: 0},
			{Text: "Sometimes", Value: 1},
			{Text: "Often", Value: 2},
			{Text: "Almost constantly", Value: 3},
		},
	},
	{
		ID:       5,
		Question: "How well have you been sleeping lately?",
		Options: []Option{
			{Text: "Very well, getting enough rest", Value: 0},
			{Text: "Fairly well", Value: 1},
			{Text: "Poorly, some sleep issues", Value: 2},
			{Text: "Very poorly, significant sleep problems", Value: 3},
		},
	},
	{
		ID:       6,
		Question: "How often do you feel overwhelmed by daily tasks?",
		Options: []Option{
			{Text: "Never", Value: 0},
			{Text: "Occasionally", Value: 1},
			{Text: "Frequently", Value: 2},
			{Text: "Almost always", Value: 3},
		},
	},
	{
		ID:       7,
		Question: "How satisfied are you with your social relationships?",
		Options: []Option{
			{Text: "Very satisfied", Value: 0},
			{Text: "Mostly satisfied", Value: 1},
			{Text: "Somewhat dissatisfied", Value: 2},
			{Text: "Very dissatisfied or isolated", Value: 3},
		},
	},
	{
		ID:       8,
		Question: "How often do you experience mood swings or emotional instability?",
		Options: []Option{
			{Text: "Rarely", Value: 0},
			{Text: "Sometimes", Value: 1},
			{Text: "Often", Value: 2},
			{Text: "Very frequently", Value: 3},
		},
	},
	{
		ID:       9,
		Question: "How confident do you feel about your ability to handle problems?",
		Options: []Option{
			{Text: "Very confident", Value: 0},
			{Text: "Somewhat confident", Value: 1},
			{Text: "Not very confident", Value: 2},
			{Text: "Not confident at all", Value: 3},
		},
	},
	{
		ID:       10,
		Question: "How often do you feel hopeful about the future?",
		Options: []Option{
			{Text: "Very often", Value: 0},
			{Text: "Sometimes", Value: 1},
			{Text: "Rarely", Value: 2},
			{Text: "Never", Value: 3},
		},
	},
}

// maxAnswerValue is the highest option value on every question
const maxAnswerValue = 3

// MaxScore is the highest achievable total
func MaxScore() int {
	return len(Questions) * maxAnswerValue
}
