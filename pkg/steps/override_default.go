//go:build !tuna

package steps

// DefaultOverride returns the override compiled into this build.
func DefaultOverride() Override {
	return NoOverride{}
}
