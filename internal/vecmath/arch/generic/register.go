package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/onshore-digital/python-audio-tools/internal/vecmath/registry"
)

// init registers the pure Go kernels. They are the fallback for every CPU
// and the only variant when ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		SumFloat64: SumFloat64,
		MinFloat64: MinFloat64,
		MaxFloat64: MaxFloat64,

		SumInt: SumInt,
		MinInt: MinInt,
		MaxInt: MaxInt,
	})
}
