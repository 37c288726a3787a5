package item

import (
	"fmt"

	"github.com/ardnew/usbdesc/hid/usage"
	"github.com/ardnew/usbdesc/pkg"
)

// Resource caps applied when the corresponding Parser field is zero.
// Both bound the memory a crafted descriptor can make the parser hold.
const (
	DefaultMaxStackDepth      = 16
	DefaultMaxCollectionDepth = 16
)

// longItemPrefix is the escape byte introducing a long item (HID 1.11
// section 6.2.2.3).
const longItemPrefix = 0xFE

// ParseError reports a fatal parse failure with its position context.
// The offset is the position of the offending item's prefix byte, so a
// truncated multi-byte item is reported at its start, not at the end of
// the buffer.
type ParseError struct {
	Offset int
	Tag    Tag
	Err    error
}

// Error returns the error message with offset and tag context.
func (e *ParseError) Error() string {
	return fmt.Sprintf("item at offset %d (tag %s): %v", e.Offset, e.Tag, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser is a pull parser producing one [Item] per Scan call while
// maintaining the global register set, the Push/Pop snapshot stack, and
// the collection nesting stack.
//
// The zero values of MaxStackDepth and MaxCollectionDepth select
// [DefaultMaxStackDepth] and [DefaultMaxCollectionDepth]. A Parser is
// single-use; restart a parse by constructing a new one. Independent
// Parsers over separate buffers are safe to run concurrently.
type Parser struct {
	// MaxStackDepth caps Push nesting. Exceeding it fails the parse
	// with pkg.ErrStackOverflow. Values below 1 select the default.
	MaxStackDepth int

	// MaxCollectionDepth caps Collection nesting. Exceeding it fails
	// the parse with pkg.ErrMalformedNesting. Values below 1 select
	// the default.
	MaxCollectionDepth int

	r    *pkg.Reader
	item Item
	err  error

	global      GlobalState
	local       LocalState
	stack       []GlobalState
	collections []CollectionType

	// Local state resets after each Main item, but only once the caller
	// has had a chance to observe the state that accompanied it: the
	// reset is deferred to the next Scan.
	pendingLocalReset bool

	delimiterDepth  int
	delimiterBranch int
}

// NewParser creates a parser over a complete in-memory report
// descriptor. The buffer is not copied; the caller must not mutate it
// while parsing.
func NewParser(data []byte) *Parser {
	return &Parser{r: pkg.NewReader(data)}
}

// Scan advances to the next item. It returns false at end of input or on
// a fatal error; Err distinguishes the two. After a Scan that returned
// true, Item holds the decoded item and Global and Local the state in
// effect at that item.
func (p *Parser) Scan() bool {
	if p.err != nil {
		return false
	}
	if p.pendingLocalReset {
		p.local = LocalState{}
		p.delimiterDepth = 0
		p.delimiterBranch = 0
		p.pendingLocalReset = false
	}
	if p.r.Remaining() == 0 {
		return false
	}

	start := p.r.Position()
	it, err := p.next(start)
	if err != nil {
		p.err = err
		return false
	}
	if err := p.apply(it); err != nil {
		p.err = err
		return false
	}

	// Every item consumes at least its prefix byte. A non-advancing
	// iteration would loop forever, so treat it as a fatal internal
	// failure rather than trusting the framing math.
	if p.r.Position() <= start {
		p.err = &ParseError{Offset: start, Tag: it.Tag, Err: pkg.ErrNoProgress}
		return false
	}

	p.item = it
	if !it.Long && it.Tag.Kind() == KindMain {
		p.pendingLocalReset = true
	}
	return true
}

// next frames and decodes the item starting at the current cursor.
func (p *Parser) next(start int) (Item, error) {
	prefix, err := p.r.ReadUint8()
	if err != nil {
		return Item{}, &ParseError{Offset: start, Err: err}
	}
	if prefix == longItemPrefix {
		return p.nextLong(start)
	}

	size := (1 << (prefix & 0x03)) >> 1
	it := Item{
		Offset: start,
		Tag:    Tag(prefix &^ 0x03),
		Size:   size,
	}
	data, err := p.r.ReadBytes(size)
	if err != nil {
		return Item{}, &ParseError{Offset: start, Tag: it.Tag, Err: err}
	}
	for i, b := range data {
		it.Data |= uint32(b) << (8 * i)
	}
	return it, nil
}

// nextLong frames a long item: the 0xFE escape, a payload length byte, a
// tag byte, then the payload. The payload is kept opaque; long items are
// unused in practice but must not derail the parse.
func (p *Parser) nextLong(start int) (Item, error) {
	length, err := p.r.ReadUint8()
	if err != nil {
		return Item{}, &ParseError{Offset: start, Tag: TagLong, Err: err}
	}
	tag, err := p.r.ReadUint8()
	if err != nil {
		return Item{}, &ParseError{Offset: start, Tag: TagLong, Err: err}
	}
	payload, err := p.r.ReadBytes(int(length))
	if err != nil {
		return Item{}, &ParseError{Offset: start, Tag: TagLong, Err: err}
	}
	pkg.LogDebug(pkg.ComponentItem, "long item passed through",
		"offset", start, "tag", tag, "length", length)
	return Item{
		Offset:  start,
		Tag:     TagLong,
		Size:    int(length),
		Long:    true,
		LongTag: tag,
		Payload: payload,
	}, nil
}

// apply folds an item into the parser state. Long items and reserved
// kinds carry no state semantics; unknown tags within a known kind are
// likewise passed through untouched.
func (p *Parser) apply(it Item) error {
	if it.Long {
		return nil
	}
	switch it.Tag.Kind() {
	case KindMain:
		return p.applyMain(it)
	case KindGlobal:
		return p.applyGlobal(it)
	case KindLocal:
		p.applyLocal(it)
	case KindReserved:
		pkg.LogDebug(pkg.ComponentItem, "reserved item passed through",
			"offset", it.Offset, "prefix", uint8(it.Tag)|sizeBits(it.Size))
	}
	return nil
}

func (p *Parser) applyMain(it Item) error {
	switch it.Tag {
	case TagCollection:
		if len(p.collections) >= p.maxCollections() {
			return &ParseError{Offset: it.Offset, Tag: it.Tag, Err: pkg.ErrMalformedNesting}
		}
		p.collections = append(p.collections, CollectionType(it.Data))
	case TagEndCollection:
		if len(p.collections) == 0 {
			return &ParseError{Offset: it.Offset, Tag: it.Tag, Err: pkg.ErrMalformedNesting}
		}
		p.collections = p.collections[:len(p.collections)-1]
		if it.Size != 0 {
			// EndCollection defines no data; tolerate and ignore it.
			pkg.LogDebug(pkg.ComponentItem, "end collection item carries data",
				"offset", it.Offset, "data", it.Data)
		}
	}
	return nil
}

func (p *Parser) applyGlobal(it Item) error {
	switch it.Tag {
	case TagUsagePage:
		p.global.UsagePage = uint16(it.Data)
	case TagLogicalMinimum:
		p.global.LogicalMinimum = it.Signed()
	case TagLogicalMaximum:
		p.global.LogicalMaximum = it.Signed()
	case TagPhysicalMinimum:
		p.global.PhysicalMinimum = it.Signed()
	case TagPhysicalMaximum:
		p.global.PhysicalMaximum = it.Signed()
	case TagUnitExponent:
		p.global.UnitExponent = it.Data
	case TagUnit:
		p.global.Unit = it.Data
	case TagReportSize:
		p.global.ReportSize = it.Data
	case TagReportID:
		p.global.ReportID = uint8(it.Data)
		p.global.HasReportID = true
	case TagReportCount:
		p.global.ReportCount = it.Data
	case TagPush:
		if len(p.stack) >= p.maxStack() {
			return &ParseError{Offset: it.Offset, Tag: it.Tag, Err: pkg.ErrStackOverflow}
		}
		p.stack = append(p.stack, p.global)
	case TagPop:
		if len(p.stack) == 0 {
			return &ParseError{Offset: it.Offset, Tag: it.Tag, Err: pkg.ErrStackUnderflow}
		}
		p.global = p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
	}
	return nil
}

func (p *Parser) applyLocal(it Item) {
	// Usage-carrying items participate in delimiter sets: only the
	// first alternative set of a local scope contributes to state.
	switch it.Tag {
	case TagUsage, TagUsageMinimum, TagUsageMaximum:
		if p.delimiterBranch > 1 {
			pkg.LogDebug(pkg.ComponentItem, "alternative usage ignored",
				"offset", it.Offset, "tag", it.Tag.String())
			return
		}
	}

	switch it.Tag {
	case TagUsage:
		p.local.Usages = append(p.local.Usages, p.resolveUsage(it))
	case TagUsageMinimum:
		p.local.UsageMinimum = p.resolveUsage(it)
		p.local.HasUsageMinimum = true
	case TagUsageMaximum:
		p.local.UsageMaximum = p.resolveUsage(it)
		p.local.HasUsageMaximum = true
	case TagDesignatorIndex:
		p.local.DesignatorIndex = it.Data
	case TagDesignatorMinimum:
		p.local.DesignatorMinimum = it.Data
	case TagDesignatorMaximum:
		p.local.DesignatorMaximum = it.Data
	case TagStringIndex:
		p.local.StringIndex = it.Data
	case TagStringMinimum:
		p.local.StringMinimum = it.Data
	case TagStringMaximum:
		p.local.StringMaximum = it.Data
	case TagDelimiter:
		p.applyDelimiter(it)
	}
}

// applyDelimiter tracks open/close delimiter pairs. Nonzero data opens a
// set of alternative usages and zero closes it; the branch counter
// advances when a set opens at depth zero, so nested opens count once.
// Imbalanced delimiters are tolerated.
func (p *Parser) applyDelimiter(it Item) {
	if it.Data != 0 {
		p.delimiterDepth++
		if p.delimiterDepth == 1 {
			p.delimiterBranch++
		}
		return
	}
	if p.delimiterDepth > 0 {
		p.delimiterDepth--
	}
}

// resolveUsage combines a usage item's data with the usage page in
// effect at the item. The 4-byte extended form carries its own page in
// the high 16 bits, which wins over the global page.
func (p *Parser) resolveUsage(it Item) usage.Usage {
	if it.Size == 4 {
		return usage.Usage(it.Data)
	}
	return usage.New(p.global.UsagePage, uint16(it.Data))
}

func (p *Parser) maxStack() int {
	if p.MaxStackDepth > 0 {
		return p.MaxStackDepth
	}
	return DefaultMaxStackDepth
}

func (p *Parser) maxCollections() int {
	if p.MaxCollectionDepth > 0 {
		return p.MaxCollectionDepth
	}
	return DefaultMaxCollectionDepth
}

// Item returns the item produced by the last Scan that returned true.
func (p *Parser) Item() Item {
	return p.item
}

// Err returns the error that stopped the parse, or nil after a clean end
// of input. Running out of items is not an error.
func (p *Parser) Err() error {
	return p.err
}

// Global returns a snapshot of the global register set as of the last
// scanned item.
func (p *Parser) Global() GlobalState {
	return p.global
}

// Local returns a snapshot of the accumulated local state. At a Main
// item this is the state that accompanies it; the post-Main reset takes
// effect on the following Scan.
func (p *Parser) Local() LocalState {
	return p.local
}

// Depth returns the number of currently open collections.
func (p *Parser) Depth() int {
	return len(p.collections)
}

// OpenCollections returns the types of the currently open collections,
// outermost first. Input that ends with open collections is not itself
// an error; callers that require balanced nesting can inspect this after
// the final Scan.
func (p *Parser) OpenCollections() []CollectionType {
	out := make([]CollectionType, len(p.collections))
	copy(out, p.collections)
	return out
}

// Items collects every item in data. On a fatal error the items decoded
// before the failure are returned along with the error.
func Items(data []byte) ([]Item, error) {
	p := NewParser(data)
	var items []Item
	for p.Scan() {
		items = append(items, p.Item())
	}
	return items, p.Err()
}
