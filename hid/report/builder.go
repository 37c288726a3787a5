package report

import (
	"fmt"

	"github.com/ardnew/usbdesc/hid/item"
	"github.com/ardnew/usbdesc/hid/usage"
	"github.com/ardnew/usbdesc/pkg"
)

// DefaultMaxFields caps the total number of fields one descriptor may
// declare. Report counts are device-controlled 32-bit values, so the
// builder refuses pathological products instead of allocating them.
const DefaultMaxFields = 4096

// BuildError reports a descriptor that could not be folded into report
// fields, carrying the byte offset of the item that failed.
type BuildError struct {
	Offset int
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("report field at offset %d: %v", e.Offset, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Builder folds a report descriptor into a [Descriptor]. The zero value
// is ready to use; the exported fields bound resource use against hostile
// input, with values at or below zero selecting the defaults. A Builder
// keeps no state between calls, so one may be shared across goroutines.
type Builder struct {
	// MaxFields caps the total field count (DefaultMaxFields when unset).
	MaxFields int

	// MaxStackDepth and MaxCollectionDepth are handed to the item parser
	// (item.DefaultMaxStackDepth and item.DefaultMaxCollectionDepth when
	// unset).
	MaxStackDepth      int
	MaxCollectionDepth int
}

// Parse builds the structured form of a report descriptor using the
// default resource caps.
func Parse(data []byte) (*Descriptor, error) {
	var b Builder
	return b.Build(data)
}

// Build parses data and folds the item sequence into report layouts and
// the collection tree.
//
// A fatal item error (truncation, malformed nesting, state stack abuse)
// aborts with no Descriptor. Input that merely ends with open collections
// yields best-effort output carrying a Warning instead, and a stream with
// no Main items yields an empty Descriptor.
func (b *Builder) Build(data []byte) (*Descriptor, error) {
	p := item.NewParser(data)
	p.MaxStackDepth = b.MaxStackDepth
	p.MaxCollectionDepth = b.MaxCollectionDepth

	s := &build{
		desc:    &Descriptor{},
		reports: make(map[reportKey]*Report),
		offsets: make(map[reportKey]int),
		max:     b.MaxFields,
	}
	if s.max <= 0 {
		s.max = DefaultMaxFields
	}

	for p.Scan() {
		it := p.Item()
		switch it.Tag {
		case item.TagCollection:
			s.openCollection(it, p.Local())
		case item.TagEndCollection:
			s.closeCollection()
		case item.TagInput, item.TagOutput, item.TagFeature:
			if err := s.addFields(it, p.Global(), p.Local()); err != nil {
				return nil, err
			}
		}
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	if n := p.Depth(); n > 0 {
		s.warn(len(data), fmt.Sprintf("unclosed collections at end of input: %d", n))
	}
	return s.desc, nil
}

// build is the transient state of one Build call.
type build struct {
	desc    *Descriptor
	reports map[reportKey]*Report
	offsets map[reportKey]int
	open    []*Collection
	count   int
	max     int
}

type reportKey struct {
	typ      FieldType
	id       uint8
	numbered bool
}

func (s *build) warn(offset int, msg string) {
	pkg.LogWarn(pkg.ComponentReport, "tolerated descriptor defect",
		"offset", offset, "defect", msg)
	s.desc.Warnings = append(s.desc.Warnings, Warning{Offset: offset, Msg: msg})
}

func (s *build) openCollection(it item.Item, l item.LocalState) {
	c := &Collection{Type: item.CollectionType(it.Data)}
	if len(l.Usages) > 0 {
		c.Usage = l.Usages[0]
	}
	if len(s.open) > 0 {
		parent := s.open[len(s.open)-1]
		parent.Collections = append(parent.Collections, c)
	} else {
		s.desc.Collections = append(s.desc.Collections, c)
	}
	s.open = append(s.open, c)
}

// closeCollection pops the innermost collection. The item parser rejects
// End Collection on an empty stack before emitting it, so the mirror
// stack cannot underflow here.
func (s *build) closeCollection() {
	s.open = s.open[:len(s.open)-1]
}

func (s *build) report(key reportKey) *Report {
	if r, ok := s.reports[key]; ok {
		return r
	}
	r := &Report{ID: key.id, Numbered: key.numbered, Type: key.typ}
	s.reports[key] = r
	s.desc.Reports = append(s.desc.Reports, r)
	return r
}

func (s *build) addFields(it item.Item, g item.GlobalState, l item.LocalState) error {
	key := reportKey{typ: fieldTypeOf(it.Tag), id: g.ReportID, numbered: g.HasReportID}
	r := s.report(key)

	logiMin, logiMax := g.LogicalMinimum, g.LogicalMaximum
	physMin, physMax := g.PhysicalMinimum, g.PhysicalMaximum
	if physMin == 0 && physMax == 0 {
		// Declaring no physical range means logical values map to
		// themselves.
		physMin, physMax = logiMin, logiMax
	}

	if l.HasUsageMinimum && l.HasUsageMaximum && !validRange(l) {
		s.warn(it.Offset, fmt.Sprintf("invalid usage range %v..%v", l.UsageMinimum, l.UsageMaximum))
	}

	flags := item.MainFlags(it.Data)
	for i := uint32(0); i < g.ReportCount; i++ {
		if s.count >= s.max {
			return &BuildError{Offset: it.Offset, Err: pkg.ErrTooManyFields}
		}
		s.count++

		f := &Field{
			ReportID:        g.ReportID,
			Numbered:        g.HasReportID,
			Type:            key.typ,
			Flags:           flags,
			BitOffset:       s.offsets[key],
			BitWidth:        int(g.ReportSize),
			UsagePage:       g.UsagePage,
			LogicalMinimum:  logiMin,
			LogicalMaximum:  logiMax,
			PhysicalMinimum: physMin,
			PhysicalMaximum: physMax,
			UnitExponent:    unitExponent(g.UnitExponent),
			Unit:            g.Unit,
		}
		if flags.IsVariable() {
			if u, ok := usageAt(l, int(i)); ok {
				f.Usage = u
				f.UsagePage = u.Page()
			}
		} else if min, max, ok := usageRange(l); ok {
			f.UsageMinimum, f.UsageMaximum = min, max
			f.UsagePage = min.Page()
		}
		s.offsets[key] += f.BitWidth
		r.Fields = append(r.Fields, f)
		if len(s.open) > 0 {
			c := s.open[len(s.open)-1]
			c.Fields = append(c.Fields, f)
		}
	}
	return nil
}

func fieldTypeOf(t item.Tag) FieldType {
	switch t {
	case item.TagOutput:
		return Output
	case item.TagFeature:
		return Feature
	}
	return Input
}

// validRange reports whether the declared usage range can index usages:
// both ends present, one page, minimum not above maximum.
func validRange(l item.LocalState) bool {
	return l.HasUsageMinimum && l.HasUsageMaximum &&
		l.UsageMinimum.Page() == l.UsageMaximum.Page() &&
		l.UsageMinimum.ID() <= l.UsageMaximum.ID()
}

// usageAt assigns the usage for the i-th field of a variable item: the
// declared usages in order, then the declared range, repeating the final
// usage once both run out.
func usageAt(l item.LocalState, i int) (usage.Usage, bool) {
	if i < len(l.Usages) {
		return l.Usages[i], true
	}
	if validRange(l) {
		span := int(l.UsageMaximum.ID()) - int(l.UsageMinimum.ID())
		j := i - len(l.Usages)
		if j > span {
			j = span
		}
		return usage.New(l.UsageMinimum.Page(), l.UsageMinimum.ID()+uint16(j)), true
	}
	if n := len(l.Usages); n > 0 {
		return l.Usages[n-1], true
	}
	return 0, false
}

// usageRange is the usage span of an array field: the declared range, or
// the ends of the declared usage list.
func usageRange(l item.LocalState) (min, max usage.Usage, ok bool) {
	if validRange(l) {
		return l.UsageMinimum, l.UsageMaximum, true
	}
	if n := len(l.Usages); n > 0 {
		return l.Usages[0], l.Usages[n-1], true
	}
	return 0, 0, false
}

// unitExponent decodes the 4-bit two's complement exponent nibble.
func unitExponent(raw uint32) int32 {
	e := int32(raw & 0xF)
	if e > 7 {
		e -= 16
	}
	return e
}
