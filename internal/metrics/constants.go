package metrics

// Metric names
const (
	MetricNameCollectionMutations = "collection_mutations_total"
	MetricNameCollectionFull      = "collection_full_total"
	MetricNameTemplateRenders     = "template_renders_total"
	MetricNameTemplateRenderTime  = "template_render_seconds"
	MetricNameTextureFallbacks    = "template_texture_fallbacks_total"
)

// Help text
const (
	HelpTextCollectionMutations = "Structural changes applied to item collections, by operation"
	HelpTextCollectionFull      = "Adds rejected because a sized collection had no empty slot"
	HelpTextTemplateRenders     = "Template texture renders, by result"
	HelpTextTemplateRenderTime  = "Time spent compositing template textures"
	HelpTextTextureFallbacks    = "Component images loaded from the fallback path"
)

// Labels and label values
const (
	LabelOp     = "op"
	LabelResult = "result"

	OpAdd     = "add"
	OpRemove  = "remove"
	OpClear   = "clear"
	OpRefresh = "refresh"

	ResultOK     = "ok"
	ResultCached = "cached"
	ResultError  = "error"
)

// RenderLatencyBuckets covers sub-millisecond cache hits up to slow disk loads
var RenderLatencyBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}
