package catalog

// Category is an ordered, named group of symbols.
type Category struct {
	Name    string
	Symbols []Symbol
}

// Catalog is the full symbol table. It is built once at startup and never
// mutated afterwards, so it is safe to share across goroutines without
// locking.
type Catalog struct {
	categories []Category
	byRune     map[rune]Symbol
}

// categoryData is the curated table. Within a category each character appears
// once; a handful of characters legitimately live in more than one category
// (quotes double as punctuation, the degree sign is both technical and
// punctuation), matching how people look for them.
var categoryData = []struct {
	name  string
	runes string
}{
	{"Punctuation", "…•—–―！？¿¡¶§†‡#@&©®™°·‧¦|‖※‚„‘’‛“”‟‹›«»"},
	{"Quotes", "'\"‘’‚‛“”„‟‹›«»′″"},
	{"Currency", "$€£¥₹₽₩₺₴₦₨₫฿₿¢"},
	{"Math", "±×÷≈≠≤≥∞√∛∜∑∏∫∂∇∩∪∈∉∅∧∨¬⇒⇔≅≡∝∴∵‰‱"},
	{"Arrows", "←↑→↓↔↕⇐⇑⇒⇓⇔↩↪↖↗↘↙⟵⟶⟷⟸⟹⟺"},
	{"Bullets & Stars", "•◦▪▫●○★☆✦✧✩✪✫✬✭✮✯✰◆◇■□◻◼◉◎"},
	{"Brackets", "()[]{}〈〉⟨⟩❪❫❬❭❮❯"},
	{"Latin Diacritics", "àáâãäåæçèéêëìíîïñòóôõöøùúûüýÿÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÑÒÓÔÕÖØÙÚÛÜÝÞþßŒœŠšŽžŁłĐđĦħŊŋŦŧ"},
	{"Greek", "αβγδεζηθικλμνξοπρστυφχψωΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩµ"},
	{"Technical", "°µΩ‰℃℉§¶№℗℠™©®♠♣♥♦♭♮♯✓✔✗✘⚠⌘⌥⌃⎋"},
	{"Box Drawing", "─━│┃┌┏┐┓└┗┘┛├┝┤┥┬┯┴┷┼┿╭╮╯╰╴╵╶╷╲╱╳"},
}

// New builds the catalog, resolving Unicode names and the codepoint index.
func New() *Catalog {
	c := &Catalog{
		byRune: make(map[rune]Symbol),
	}

	for _, data := range categoryData {
		cat := Category{Name: data.name}
		seen := make(map[rune]bool)
		for _, r := range data.runes {
			if seen[r] {
				continue
			}
			seen[r] = true

			sym := Symbol{
				Char:     r,
				Name:     runeName(r),
				Category: data.name,
			}
			cat.Symbols = append(cat.Symbols, sym)

			// First category wins for the index: lookups resolve to the
			// symbol's primary home.
			if _, exists := c.byRune[r]; !exists {
				c.byRune[r] = sym
			}
		}
		c.categories = append(c.categories, cat)
	}

	return c
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category returns the named category, if present.
func (c *Catalog) Category(name string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Lookup resolves a codepoint to its symbol.
func (c *Catalog) Lookup(r rune) (Symbol, bool) {
	sym, ok := c.byRune[r]
	return sym, ok
}

// Symbols returns every distinct symbol in category order.
func (c *Catalog) Symbols() []Symbol {
	seen := make(map[rune]bool)
	var out []Symbol
	for _, cat := range c.categories {
		for _, sym := range cat.Symbols {
			if seen[sym.Char] {
				continue
			}
			seen[sym.Char] = true
			out = append(out, sym)
		}
	}
	return out
}

// Len reports the number of distinct symbols.
func (c *Catalog) Len() int {
	return len(c.byRune)
}
