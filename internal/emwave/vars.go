package emwave

var (
	Debug     = false // set to true for verbose debug output
	ShowStats = true  // set to false to skip per-medium field summaries after rendering
)
