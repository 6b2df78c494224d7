package pretty

import (
	"cmp"
	"container/list"
	"go/ast"
	"go/token"
	"reflect"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/George-Ogden/dbg/internal/valueorder"
	"github.com/George-Ogden/dbg/pkg/collections"
)

// maxViewItems caps how many elements are drawn from an iterator.
const maxViewItems = 1000

// category is one structural rule of the classifier. build must not expand
// v when elided is set.
type category struct {
	name  string
	match func(v reflect.Value) bool
	build func(c *classifier, v reflect.Value, elided bool) Node
}

// categories is the classifier's rule list. Order matters: several rules
// can match the same value and the first one wins.
var categories []category

func init() {
	categories = []category{
		{"sequence", isSequence, sliceMaker.build},
		{"set", isSet, setMaker.build},
		{"bitset", isBitSet, bitSetMaker.build},
		{"tuple", isArray, arrayMaker.build},
		{"counter", isCounter, counterMaker.build},
		{"default map", implementsNonNil(defaultedType), buildDefaultMap},
		{"ordered map", isOrderedMap, orderedMapMaker.build},
		{"map", isMap, mapMaker.build},
		{"view", isView, buildView},
		{"sequence wrapper", implementsNonNil(sequenceType), sequenceWrapperMaker.build},
		{"mapping wrapper", implementsNonNil(mappingType), mappingWrapperMaker.build},
		{"deque", isLinkedList, linkedListMaker.build},
		{"syntax tree", isSyntaxNode, buildSyntaxNode},
		{"chain map", implementsNonNil(layeredType), buildChainMap},
		{"record", isStruct, buildRecord},
		{"reference", isPointer, buildReference},
	}
}

var (
	multisetType  = reflect.TypeFor[collections.Multiset]()
	defaultedType = reflect.TypeFor[collections.Defaulted]()
	layeredType   = reflect.TypeFor[collections.Layered]()
	sequenceType  = reflect.TypeFor[Sequence]()
	mappingType   = reflect.TypeFor[Mapping]()
	astNodeType   = reflect.TypeFor[ast.Node]()
	bitSetType    = reflect.TypeFor[*bitset.BitSet]()
	listType      = reflect.TypeFor[*list.List]()
	posType       = reflect.TypeFor[token.Pos]()
	objectType    = reflect.TypeFor[*ast.Object]()
	scopeType     = reflect.TypeFor[*ast.Scope]()

	orderedMapPkg = reflect.TypeFor[orderedmap.OrderedMap[string, any]]().PkgPath()
	counterPkg    = reflect.TypeFor[collections.Counter[string]]().PkgPath()
)

// =============================================================================
// Makers
// =============================================================================

// maker builds the node of a container category.
type maker struct {
	// alwaysNamed shows the type name even for unnamed types.
	alwaysNamed bool
	// neverNamed hides the type name even for named types.
	neverNamed bool
	// emptyBraces keeps the brackets of empty instances: List([]) rather
	// than List().
	emptyBraces bool
	// emptyName names empty unnamed instances, as in set().
	emptyName string
	brackets  brackets
	size      func(v reflect.Value) int
	items     func(c *classifier, v reflect.Value) []Node
	// wrap overrides how the children are assembled.
	wrap func(v reflect.Value, label string, children []Node, elided bool) Node
}

func (m maker) label(v reflect.Value) string {
	if m.neverNamed {
		return ""
	}
	name := declaredName(v.Type())
	if name == "" && m.alwaysNamed {
		name = kindName(v.Type())
	}
	return name
}

func (m maker) build(c *classifier, v reflect.Value, elided bool) Node {
	label := m.label(v)
	if m.size(v) == 0 && !m.emptyBraces {
		name := label
		if name == "" {
			name = m.emptyName
		}
		if name != "" {
			return namedObject(name, nil, false)
		}
	}

	var children []Node
	if elided || !c.enter(v) {
		elided = true
	} else {
		children = m.items(c, v)
		c.leave(v)
	}
	if m.wrap != nil {
		return m.wrap(v, label, children, elided)
	}
	return newSequence(children, elided, m.brackets.labeled(label), false)
}

var sliceMaker = maker{
	brackets: square,
	size:     reflect.Value.Len,
	items:    indexed,
}

var setMaker = maker{
	brackets:  curly,
	emptyName: "set",
	size:      reflect.Value.Len,
	items: func(c *classifier, v reflect.Value) []Node {
		keys := v.MapKeys()
		valueorder.Sort(keys)
		children := make([]Node, len(keys))
		for i, k := range keys {
			children[i] = c.classify(k)
		}
		return children
	},
}

var bitSetMaker = maker{
	alwaysNamed: true,
	brackets:    curly,
	size: func(v reflect.Value) int {
		return int(v.Interface().(*bitset.BitSet).Count())
	},
	items: func(c *classifier, v reflect.Value) []Node {
		b := v.Interface().(*bitset.BitSet)
		var children []Node
		for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
			children = append(children, c.classify(reflect.ValueOf(i)))
		}
		return children
	},
}

var arrayMaker = maker{
	brackets: round,
	size:     reflect.Value.Len,
	items:    indexed,
	wrap: func(v reflect.Value, label string, children []Node, elided bool) Node {
		return newSequence(children, elided, round.labeled(label), v.Len() == 1)
	},
}

var counterMaker = maker{
	alwaysNamed: true,
	brackets:    curly,
	size: func(v reflect.Value) int {
		if v.CanInterface() {
			return len(v.Interface().(collections.Multiset).Counts())
		}
		return v.Len()
	},
	items: func(c *classifier, v reflect.Value) []Node {
		if !v.CanInterface() {
			return counterEntries(c, v)
		}
		counts := v.Interface().(collections.Multiset).Counts()
		children := make([]Node, len(counts))
		for i, count := range counts {
			children[i] = newPair(c.classify(reflect.ValueOf(count.Key)), c.classify(reflect.ValueOf(count.N)))
		}
		return children
	},
}

// counterEntries lists a Counter reached through an unexported field, most
// common first and then by key, the order Counts uses.
func counterEntries(c *classifier, v reflect.Value) []Node {
	keys := v.MapKeys()
	slices.SortStableFunc(keys, func(a, b reflect.Value) int {
		if d := cmp.Compare(v.MapIndex(b).Int(), v.MapIndex(a).Int()); d != 0 {
			return d
		}
		return valueorder.Compare(a, b)
	})
	children := make([]Node, len(keys))
	for i, k := range keys {
		children[i] = newPair(c.classify(k), c.classify(v.MapIndex(k)))
	}
	return children
}

var orderedMapMaker = maker{
	neverNamed: true,
	brackets:   curly,
	size: func(v reflect.Value) int {
		return int(v.MethodByName("Len").Call(nil)[0].Int())
	},
	items: func(c *classifier, v reflect.Value) []Node {
		var children []Node
		for p := v.MethodByName("Oldest").Call(nil)[0]; !p.IsNil(); p = p.MethodByName("Next").Call(nil)[0] {
			e := p.Elem()
			children = append(children, newPair(c.classify(e.FieldByName("Key")), c.classify(e.FieldByName("Value"))))
		}
		return children
	},
}

var mapMaker = maker{
	brackets: curly,
	size:     reflect.Value.Len,
	items:    (*classifier).entries,
}

var sequenceWrapperMaker = maker{
	alwaysNamed: true,
	emptyBraces: true,
	brackets:    square,
	size: func(v reflect.Value) int {
		return len(v.Interface().(Sequence).PrettyItems())
	},
	items: func(c *classifier, v reflect.Value) []Node {
		items := v.Interface().(Sequence).PrettyItems()
		children := make([]Node, len(items))
		for i, item := range items {
			children[i] = c.classify(reflect.ValueOf(item))
		}
		return children
	},
}

var mappingWrapperMaker = maker{
	alwaysNamed: true,
	emptyBraces: true,
	brackets:    curly,
	size: func(v reflect.Value) int {
		return len(v.Interface().(Mapping).PrettyEntries())
	},
	items: func(c *classifier, v reflect.Value) []Node {
		entries := v.Interface().(Mapping).PrettyEntries()
		children := make([]Node, len(entries))
		for i, e := range entries {
			children[i] = newPair(c.classify(reflect.ValueOf(e.Key)), c.classify(reflect.ValueOf(e.Value)))
		}
		return children
	},
}

var linkedListMaker = maker{
	alwaysNamed: true,
	emptyBraces: true,
	brackets:    square,
	size: func(v reflect.Value) int {
		return v.Interface().(*list.List).Len()
	},
	items: func(c *classifier, v reflect.Value) []Node {
		var children []Node
		for e := v.Interface().(*list.List).Front(); e != nil; e = e.Next() {
			children = append(children, c.classify(reflect.ValueOf(e.Value)))
		}
		return children
	},
}

// indexed classifies the elements of a slice or array in order.
func indexed(c *classifier, v reflect.Value) []Node {
	children := make([]Node, v.Len())
	for i := range children {
		children[i] = c.classify(v.Index(i))
	}
	return children
}

// entries classifies the entries of a map in key order.
func (c *classifier) entries(v reflect.Value) []Node {
	keys := v.MapKeys()
	valueorder.Sort(keys)
	children := make([]Node, len(keys))
	for i, k := range keys {
		children[i] = newPair(c.classify(k), c.classify(v.MapIndex(k)))
	}
	return children
}

// =============================================================================
// Builders
// =============================================================================

// buildDefaultMap renders DefaultMap(factory, {k: v}). The factory stays
// visible even when the entries are elided.
func buildDefaultMap(c *classifier, v reflect.Value, elided bool) Node {
	d := v.Interface().(collections.Defaulted)
	factory := newLeaf("nil")
	if f := d.DefaultFactory(); f != nil {
		factory = newLeaf(reflect.TypeOf(f).String())
	}

	var inner *sequence
	if elided || !c.enter(v) {
		inner = newSequence(nil, true, curly, false)
	} else {
		inner = newSequence(c.entries(reflect.ValueOf(d.Underlying())), false, curly, false)
		c.leave(v)
	}
	return namedObject(declaredName(v.Type()), []Node{factory, inner}, false)
}

// buildView drains an iter.Seq or iter.Seq2. Pairs from a Seq2 are shown
// as tuples. Iterators longer than maxViewItems end in an ellipsis.
func buildView(c *classifier, v reflect.Value, elided bool) Node {
	label := declaredName(v.Type())
	if label == "" {
		label = "Seq"
		if v.Type().In(0).NumIn() == 2 {
			label = "Seq2"
		}
	}
	b := square.labeled(label)
	if elided || !c.enter(v) {
		return newSequence(nil, true, b, false)
	}
	defer c.leave(v)

	yields, truncated := drain(v, maxViewItems)
	children := make([]Node, 0, len(yields)+1)
	for _, args := range yields {
		if len(args) == 1 {
			children = append(children, c.classify(args[0]))
			continue
		}
		children = append(children, newSequence([]Node{c.classify(args[0]), c.classify(args[1])}, false, round, false))
	}
	if truncated {
		children = append(children, ellipsis())
	}
	return newSequence(children, false, b, false)
}

// drain calls the iterator v with a yield function that records its
// arguments, stopping after limit values.
func drain(v reflect.Value, limit int) (yields [][]reflect.Value, truncated bool) {
	yieldType := v.Type().In(0)
	stop := reflect.ValueOf(false).Convert(yieldType.Out(0))
	more := reflect.ValueOf(true).Convert(yieldType.Out(0))
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		if len(yields) == limit {
			truncated = true
			return []reflect.Value{stop}
		}
		yields = append(yields, append([]reflect.Value(nil), args...))
		return []reflect.Value{more}
	})
	v.Call([]reflect.Value{yield})
	return yields, truncated
}

// buildSyntaxNode renders a go/ast node as Name(Field=value), leaving out
// positions, resolver links and fields that are nil or empty.
func buildSyntaxNode(c *classifier, v reflect.Value, elided bool) Node {
	name := declaredName(v.Type())
	if elided || !c.enter(v) {
		return namedObject(name, nil, true)
	}
	defer c.leave(v)

	s := v.Elem()
	t := s.Type()
	var children []Node
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := s.Field(i)
		if !field.IsExported() || skipSyntaxField(field.Type, value) {
			continue
		}
		children = append(children, newAttr(field.Name, c.classify(value)))
	}
	return namedObject(name, children, false)
}

func skipSyntaxField(t reflect.Type, v reflect.Value) bool {
	switch t {
	case posType, objectType, scopeType:
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func:
		return v.IsNil()
	case reflect.Slice:
		return v.Len() == 0
	}
	return false
}

// buildChainMap renders ChainMap({...}, {...}) with one child per layer.
func buildChainMap(c *classifier, v reflect.Value, elided bool) Node {
	name := declaredName(v.Type())
	if elided || !c.enter(v) {
		return namedObject(name, nil, true)
	}
	defer c.leave(v)

	layers := v.Interface().(collections.Layered).Layers()
	children := make([]Node, len(layers))
	for i, layer := range layers {
		children[i] = c.classify(reflect.ValueOf(layer))
	}
	return namedObject(name, children, false)
}

// buildRecord renders a struct as Name(Field=value). Fields tagged
// `pretty:"-"` and blank fields are left out.
func buildRecord(c *classifier, v reflect.Value, elided bool) Node {
	t := v.Type()
	name := typeName(t)
	if name == "" {
		name = "struct"
	}
	if elided {
		return namedObject(name, nil, true)
	}

	var children []Node
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Name == "_" || field.Tag.Get("pretty") == "-" {
			continue
		}
		children = append(children, newAttr(field.Name, c.classify(v.Field(i))))
	}
	return namedObject(name, children, false)
}

// buildReference renders a pointer as & followed by its target.
func buildReference(c *classifier, v reflect.Value, elided bool) Node {
	if elided || !c.enter(v) {
		return newReference(c.placeholder(v.Elem()))
	}
	defer c.leave(v)
	return newReference(c.classify(v.Elem()))
}

// =============================================================================
// Matchers
// =============================================================================

func nonNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !v.IsNil()
	}
	return true
}

func implementsNonNil(iface reflect.Type) func(reflect.Value) bool {
	return func(v reflect.Value) bool {
		return v.CanInterface() && nonNil(v) && v.Type().Implements(iface)
	}
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice && !v.IsNil() && v.Type().Elem().Kind() != reflect.Uint8
}

func isSet(v reflect.Value) bool {
	if v.Kind() != reflect.Map || v.IsNil() {
		return false
	}
	elem := v.Type().Elem()
	return elem.Kind() == reflect.Struct && elem.NumField() == 0
}

func isBitSet(v reflect.Value) bool {
	return v.Type() == bitSetType && !v.IsNil() && v.CanInterface()
}

func isArray(v reflect.Value) bool {
	return v.Kind() == reflect.Array
}

func isCounter(v reflect.Value) bool {
	if implementsNonNil(multisetType)(v) {
		return true
	}
	t := v.Type()
	return v.Kind() == reflect.Map && !v.IsNil() &&
		t.PkgPath() == counterPkg && strings.HasPrefix(t.Name(), "Counter[")
}

func isOrderedMap(v reflect.Value) bool {
	if v.Kind() != reflect.Pointer || v.IsNil() || !v.CanInterface() {
		return false
	}
	elem := v.Type().Elem()
	return elem.PkgPath() == orderedMapPkg && strings.HasPrefix(elem.Name(), "OrderedMap[")
}

func isMap(v reflect.Value) bool {
	return v.Kind() == reflect.Map && !v.IsNil()
}

// isView matches func(yield func(V) bool) and func(yield func(K, V) bool),
// the shapes of iter.Seq and iter.Seq2.
func isView(v reflect.Value) bool {
	if v.Kind() != reflect.Func || v.IsNil() || !v.CanInterface() {
		return false
	}
	t := v.Type()
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		(yield.NumIn() == 1 || yield.NumIn() == 2) &&
		yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool &&
		!yield.IsVariadic()
}

func isLinkedList(v reflect.Value) bool {
	return v.Type() == listType && !v.IsNil() && v.CanInterface()
}

func isSyntaxNode(v reflect.Value) bool {
	return v.Kind() == reflect.Pointer && !v.IsNil() &&
		v.Type().Elem().Kind() == reflect.Struct &&
		v.Type().Elem().PkgPath() == "go/ast" &&
		v.Type().Implements(astNodeType)
}

func isStruct(v reflect.Value) bool {
	return v.Kind() == reflect.Struct
}

func isPointer(v reflect.Value) bool {
	return v.Kind() == reflect.Pointer && !v.IsNil()
}

// exempt reports whether t belongs to a library whose display methods are
// not user overrides.
func exempt(t reflect.Type) bool {
	if t == bitSetType || t == listType {
		return true
	}
	return t.Kind() == reflect.Pointer &&
		t.Elem().Kind() == reflect.Struct &&
		t.Elem().PkgPath() == "go/ast"
}

// =============================================================================
// Names
// =============================================================================

// declaredName returns the type name of t, looking through one pointer.
func declaredName(t reflect.Type) string {
	if name := typeName(t); name != "" {
		return name
	}
	if t.Kind() == reflect.Pointer {
		return typeName(t.Elem())
	}
	return ""
}

// kindName names unnamed types that must show a name.
func kindName(t reflect.Type) string {
	return t.Kind().String()
}
