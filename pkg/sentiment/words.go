package sentiment

// defaultWords holds polarity in [-1, 1] for common English opinion words.
var defaultWords = map[string]float64{
	// positive
	"good": 0.7, "great": 0.8, "excellent": 1.0, "amazing": 0.6, "awesome": 1.0,
	"wonderful": 1.0, "fantastic": 0.4, "best": 1.0, "better": 0.5, "nice": 0.6,
	"happy": 0.8, "glad": 0.5, "love": 0.5, "loved": 0.7, "like": 0.2,
	"success": 0.6, "successful": 0.75, "win": 0.8, "won": 0.5, "victory": 0.6,
	"positive": 0.3, "benefit": 0.4, "beneficial": 0.5, "improve": 0.5, "improved": 0.5,
	"growth": 0.4, "strong": 0.4, "safe": 0.5, "secure": 0.4, "peace": 0.5,
	"hope": 0.4, "hopeful": 0.5, "progress": 0.4, "praise": 0.6, "celebrate": 0.6,
	"support": 0.3, "trusted": 0.5, "reliable": 0.5, "honest": 0.6, "fair": 0.5,
	"agree": 0.3, "approve": 0.4, "approved": 0.4, "recover": 0.3, "recovery": 0.3,
	"breakthrough": 0.6, "remarkable": 0.75, "impressive": 1.0, "brilliant": 0.9, "perfect": 1.0,
	"effective": 0.6, "helpful": 0.5, "calm": 0.3, "optimistic": 0.6, "thriving": 0.6,

	// negative
	"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0, "worst": -1.0,
	"worse": -0.4, "poor": -0.4, "sad": -0.5, "angry": -0.5, "hate": -0.8,
	"fail": -0.5, "failed": -0.5, "failure": -0.6, "lose": -0.4, "lost": -0.3,
	"crisis": -0.6, "disaster": -0.8, "catastrophe": -0.9, "attack": -0.5, "war": -0.6,
	"kill": -0.7, "killed": -0.7, "death": -0.6, "dead": -0.6, "violence": -0.7,
	"fraud": -0.7, "scam": -0.8, "hoax": -0.7, "lie": -0.6, "lies": -0.6,
	"false": -0.4, "fake": -0.5, "corrupt": -0.7, "corruption": -0.7, "scandal": -0.6,
	"threat": -0.5, "danger": -0.6, "dangerous": -0.6, "risk": -0.3, "fear": -0.5,
	"shocking": -0.5, "outrage": -0.6, "outrageous": -0.6, "collapse": -0.6, "decline": -0.3,
	"weak": -0.4, "wrong": -0.5, "problem": -0.3, "crash": -0.6, "toxic": -0.7,
	"deny": -0.3, "denied": -0.3, "blame": -0.4, "condemn": -0.6, "slammed": -0.5,
}

// defaultIntensifiers scale the polarity of the following word.
var defaultIntensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "incredibly": 1.5, "highly": 1.3,
	"totally": 1.4, "absolutely": 1.5, "so": 1.2, "too": 1.2, "quite": 1.1,
	"slightly": 0.5, "somewhat": 0.7, "barely": 0.4, "hardly": 0.4,
}

var defaultNegations = []string{
	"not", "no", "never", "none", "nobody", "nothing", "neither", "nor", "without",
}
