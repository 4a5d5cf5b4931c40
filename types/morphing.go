package types

import (
	"fmt"
	"strings"
)

// MorphingDirection selects which configuration carries the vertical spars.
// Backwards: spars are vertical in the child, thicknesses are measured in the
// parent along the carried spar direction. Forwards: spars are vertical in the
// parent and are carried onto the child.
type MorphingDirection uint8

const (
	Backwards MorphingDirection = iota
	Forwards
)

var MorphingDirectionNameMap = map[string]MorphingDirection{
	"backwards": Backwards,
	"backward":  Backwards,
	"forwards":  Forwards,
	"forward":   Forwards,
}

func (md MorphingDirection) String() string {
	switch md {
	case Backwards:
		return "backwards"
	case Forwards:
		return "forwards"
	}
	return fmt.Sprintf("MorphingDirection(%d)", uint8(md))
}

func NewMorphingDirection(label string) (md MorphingDirection, err error) {
	var (
		ok bool
	)
	if md, ok = MorphingDirectionNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown morphing direction %q: %w", label, ErrInvalidDomain)
	}
	return
}
