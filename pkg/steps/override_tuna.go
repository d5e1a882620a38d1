//go:build tuna

package steps

func DefaultOverride() Override {
	return TunaVideoFloor
}
