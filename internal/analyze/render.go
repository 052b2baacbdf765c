package analyze

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dtnitsch/fake-news-detector/models"
)

const barWidth = 20

// RenderText writes the human-readable report for one response.
func RenderText(w io.Writer, resp models.Response) {
	if resp.Warning != nil {
		fmt.Fprintf(w, "Warning: %s\n", resp.Warning.Message)
		return
	}
	if resp.Outcome == nil {
		return
	}
	o := resp.Outcome
	pred := o.Prediction

	if pred.Label == models.LabelReal {
		fmt.Fprintln(w, "The News is Real!")
	} else {
		fmt.Fprintln(w, "The News is Fake!")
		fmt.Fprintln(w, "Be cautious! Double-check the source.")
	}
	fmt.Fprintf(w, "\nConfidence: %s\n", percent(pred.Confidence))
	fmt.Fprintf(w, "  Fake  %s %7s\n", bar(pred.Probabilities.Fake), percent(pred.Probabilities.Fake))
	fmt.Fprintf(w, "  Real  %s %7s\n", bar(pred.Probabilities.Real), percent(pred.Probabilities.Real))

	in := o.Insights
	fmt.Fprintln(w, "\nText Insights")
	fmt.Fprintf(w, "  Word count:      %d\n", in.WordCount)
	fmt.Fprintf(w, "  Sentence count:  %d\n", in.SentenceCount)
	if in.Sentiment.Available {
		fmt.Fprintf(w, "  Sentiment:       %s (%.2f)\n", in.Sentiment, in.Sentiment.Score)
	} else {
		fmt.Fprintf(w, "  Sentiment:       %s\n", in.Sentiment)
	}
	fmt.Fprintf(w, "  Top words:       %s\n", in.TopWords)

	if lang := o.Language; lang != nil {
		code := lang.Code
		if code == "" {
			code = "undetermined"
		}
		fmt.Fprintf(w, "  Language:        %s (%.2f)\n", code, lang.Confidence)
		if !lang.Supported {
			fmt.Fprintf(w, "\nNote: the model was fitted on %q text; results for %q may be unreliable.\n", lang.Expected, lang.Code)
		}
	}
}

func bar(p float64) string {
	filled := int(math.Round(p * barWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}
