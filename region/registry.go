package region

// byName maps a region name to its constructor. New variants register
// here rather than through an open type hierarchy.
var byName = map[string]func() Region{
	"square": func() Region { return NewSquare() },
}

// ByName resolves a region by its string name, as used by the engine's
// set_region(name) operation. Returns ErrUnknownRegion for any name not
// registered — including names that merely sound plausible ("rect",
// "circle") — since behavior for anything but the unit square is
// explicitly undefined by spec.
func ByName(name string) (Region, error) {
	ctor, ok := byName[name]
	if !ok {
		return nil, ErrUnknownRegion
	}
	return ctor(), nil
}
