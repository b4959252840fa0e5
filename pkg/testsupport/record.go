package testsupport

// FullRecord exercises every section of the page, including an extra spec key
// and a list-valued spec.
const FullRecord = `{
  "meta": {"asin": "B015TKUPIC", "amazon_url": "https://www.amazon.com/dp/B015TKUPIC"},
  "product": {
    "product_name": "NOCO Boost Plus GB40",
    "category": "Jump Starters",
    "brand": "NOCO",
    "description": "Portable lithium jump starter."
  },
  "definition": {"what_it_is_paragraph": "A handheld lithium jump starter for 12-volt batteries."},
  "targets": ["Commuters", "Boat owners"],
  "problem_solution_pairs": [
    {"problem": "Dead battery in the cold", "solution": "Starts engines down to -4F"},
    {"problem": "No second car for cables", "solution": "Works without a donor vehicle"},
    {"problem": "Reverse polarity sparks", "solution": "Spark-proof clamps"}
  ],
  "feature_benefit_pairs": [
    {"feature": "1000 amp output", "benefit": "Starts gas engines up to 6 liters"},
    {"feature": "USB charging port", "benefit": "Charges phones on the road"}
  ],
  "specs": {
    "material": "ABS housing",
    "weight": "2.4 lb",
    "battery_type": "Lithium-ion",
    "in_box": ["GB40", "Clamps", "USB cable"],
    "capacity": 1000
  },
  "safety_points": ["Reverse polarity protection"],
  "faqs": [
    {"question": "Can it charge a phone?", "answer": "Yes, via USB."},
    {"question": "Does it work on diesel?", "answer": "Up to 3 liters."}
  ],
  "comparison_paragraph": "Smaller than lead-acid packs.",
  "trigger_queries": ["best jump starter", "portable car battery booster"],
  "llm_summary_paragraph": "The GB40 is a compact lithium jump starter.",
  "internal_notes": "not rendered"
}`
