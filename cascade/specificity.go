package cascade

// Weights of the components of specificity. Sheet priority is the coarsest
// override, rule priority the finest.
const (
	RuleWeight     = 1
	SelectorWeight = 10
	SheetWeight    = 100
)

// Specificity calculates the override weight of a preset.
func Specificity(rulePriority, tokenCount, sheetPriority int) int {
	return RuleWeight*rulePriority + SelectorWeight*tokenCount + SheetWeight*sheetPriority
}
