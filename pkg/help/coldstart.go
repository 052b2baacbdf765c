package help

const ColdstartYAML = `# fake-news-detector (fnd) Quick Start

artifacts:
  vectorizer: "vectorizer.json|.yaml (fitted TF-IDF: vocabulary, idf, tokenizer settings)"
  model: "lr_model.json|.yaml (logistic regression: classes [0,1], coef, intercept)"
  location: "--artifacts-dir or artifacts.dir in config.yaml (default: current directory)"
  export_note: "Artifacts are exported once from the training environment; fnd never trains"

output_formats:
  text: "Human-readable verdict, confidence bars and insights (default)"
  json: "Full response on stdout"
  yaml: "Full response on stdout"

commands:
  analyze_text: |
    fnd analyze --text "Senate passes the annual budget after a late vote."

  analyze_file: |
    fnd analyze --file article.txt --format json

  analyze_html: |
    fnd analyze --html saved-page.html --source-url https://example.com/story

  analyze_stdin: |
    pbpaste | fnd analyze --format yaml --fields prediction,insights

  check_artifacts: |
    fnd inspect

  import_dataset: |
    fnd dataset import samples.csv
    fnd dataset import --label fake Fake.csv
    fnd dataset import --label real True.csv

  list_dataset: |
    fnd dataset list --label fake --limit 20

  evaluate: |
    fnd evaluate --workers 8 --format json

config_file: |
  artifacts: {dir: ./artifacts, vectorizer: vectorizer.json, model: lr_model.json}
  sentiment: {enabled: true, lexicon: ""}
  insights: {top_words: 5, min_word_length: 5}
  language: {enabled: false, expected: ""}
  output: {format: text}

insights:
  word_count: "Whitespace-separated tokens"
  sentence_count: "Occurrences of . ! ? (abbreviations count too)"
  sentiment: "positive > 0.1, negative < -0.1, otherwise neutral; 'neutral (unavailable)' with --no-sentiment"
  top_words: "Five most frequent words of 5+ letters, 'none' when there are none"

error_behavior:
  - "Empty input: warning 'Please enter some text before analyzing.'"
  - "Missing or corrupt artifacts: fail at startup"
  - "Vectorizer/model feature count mismatch: fail at startup"
  - "Exit codes: 0=success, 1=validation warning or bad flags, 2=fatal error"
`
