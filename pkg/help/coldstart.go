package help

const ColdstartYAML = `# blockinfer Quick Start

input:
  snippet: "Component snapshot exported from the design tool (default)"
  full_page: "Complete HTML pages work too; main content is isolated first"

output_formats:
  json: "Response envelope to stdout (default)"
  yaml: "Same envelope as YAML (--format yaml)"

commands:
  basic_analyze: |
    blockinfer analyze --file export.html

  named_block: |
    blockinfer analyze --file export.html --name feature-cards

  with_corpus: |
    blockinfer analyze --file export.html --corpus ./corpus

  batch: |
    blockinfer analyze --dir ./exports --out ./results

  find_similar: |
    blockinfer similar --name product-carousel --characteristics "carousel,multi-item" --corpus ./corpus

  history: |
    blockinfer db history
    blockinfer db history --limit 50
    blockinfer db history --filter "conf:>=70,type:multi-item"

  block_history: |
    blockinfer db block feature-cards

result_fields:
  block_type: "single or multi-item"
  js_pattern: "cards, carousel or decorated"
  container_fields: "Fields that occur once per block"
  item_fields: "Fields repeated per item (multi-item only)"
  confidence: "0-100; overall, block_type and field_extraction sub-scores"
  suggestions: "Actionable hints whenever a heuristic came up short"

confidence_bands:
  high: ">= 70: schema is ready for review"
  medium: "40-69: check the suggestions before using the schema"
  low: "< 40: provide more complete markup or name the block explicitly"

corpus_layout:
  - "One directory per block: corpus/<block-name>/block.json"
  - "Flat entries also work: corpus/<block-name>.json"
  - "A missing corpus directory is fine; similarity matching is skipped"

history_system:
  - "Analyses tracked in SQLite next to the binary (blockinfer.db)"
  - "Override the location with --db <path>"
  - "Filter expressions: conf:>=N, type:single|multi-item, pattern:cards|carousel|decorated"

thresholds:
  - "All heuristics are tunable via --thresholds thresholds.yaml"
  - "Unset values keep their defaults"
`
