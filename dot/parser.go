package dot

// Parse parses DOT source text into a Graph.
//
// On failure it returns the zero Graph and an error chaining the grammar
// rules that were being attempted (*RuleError) over the lowest-level token
// mismatch (*ParseError); inspect the chain with errors.As. No partial
// Graph is ever returned.
//
// The grammar is the printed subset: a header, zero or more attribute
// statements, one or more node statements, then one or more edge
// statements. Two asymmetries are deliberate: 'edge' and 'node' default
// statements are recognized and discarded rather than applied to later
// declarations, and cluster syntax is emitted by Print but not recognized
// here.
func Parse(src []byte) (Graph, error) {
	p := &parser{s: newScanner(src)}
	if err := p.parseGraph(); err != nil {
		return Graph{}, rule("Graph", err)
	}
	return p.g, nil
}

type parser struct {
	s *scanner
	g Graph
}

// many1 applies parse until it fails, requiring at least one success.
// parse must restore the cursor itself when it fails.
func many1(parse func() error) error {
	if err := parse(); err != nil {
		return err
	}
	for parse() == nil {
	}
	return nil
}

func (p *parser) parseGraph() error {
	s := p.s
	s.spaces()

	// Optional 'strict' prefix, separated from the graph keyword.
	m := s.mark()
	if s.literal("strict") == nil && s.spaces1() == nil {
		p.g.Strict = true
	} else {
		s.reset(m)
	}

	switch {
	case s.literal("digraph") == nil:
		p.g.Directed = true
	case s.literal("graph") == nil:
		p.g.Directed = false
	default:
		return rule("GraphHeader", s.errf("expected 'graph' or 'digraph'"))
	}

	// Optional identifier; whitespace is required between the keyword and
	// whatever follows it, optional before the brace.
	if !s.eof() && s.peek() != '{' {
		if err := s.spaces1(); err != nil {
			return rule("GraphHeader", err)
		}
		if !s.eof() && s.peek() != '{' {
			id, err := p.parseID()
			if err != nil {
				return rule("GraphHeader", err)
			}
			p.g.ID = &id
			s.spaces()
		}
	}
	if err := s.literal("{"); err != nil {
		return rule("GraphHeader", err)
	}
	s.spaces()
	if err := s.newline(); err != nil {
		return rule("GraphHeader", err)
	}

	if err := p.parseAttrStmts(); err != nil {
		return err
	}
	if err := many1(p.parseNodeStmt); err != nil {
		return err
	}
	if err := many1(p.parseEdgeStmt); err != nil {
		return err
	}

	s.spaces()
	if err := s.literal("}"); err != nil {
		return rule("GraphBody", err)
	}

	// Nothing but trailing whitespace may follow the closing brace.
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return rule("GraphBody", s.errf("expected end of input"))
		}
	}
	return nil
}

// parseAttrStmts consumes the attribute-statement prefix of the body.
// 'edge' and 'node' default statements are skipped whole-line and
// contribute nothing; 'graph' statements feed the graph attribute list.
func (p *parser) parseAttrStmts() error {
	s := p.s
	for {
		m := s.mark()
		s.spaces()
		word, err := s.identifier()
		if err != nil {
			s.reset(m)
			return nil
		}
		switch word {
		case "edge", "node":
			s.restOfLine()
		case "graph":
			if err := s.spaces1(); err != nil {
				return rule("AttributeStatement", err)
			}
			attrs, err := p.parseAttrList()
			if err != nil {
				return rule("AttributeStatement", err)
			}
			p.g.Attrs = append(p.g.Attrs, attrs...)
			s.restOfLine()
		default:
			s.reset(m)
			return nil
		}
	}
}

func (p *parser) parseNodeStmt() error {
	s := p.s
	m := s.mark()
	fail := func(err error) error {
		s.reset(m)
		return rule("NodeStatement", err)
	}

	s.spaces()
	id, err := s.integer()
	if err != nil {
		return fail(err)
	}

	attrs, err := p.parseOptionalAttrList()
	if err != nil {
		return fail(err)
	}

	s.spaces()
	if err := s.literal(";"); err != nil {
		return fail(err)
	}
	s.spaces()
	if err := s.newline(); err != nil {
		return fail(err)
	}

	p.g.Nodes = append(p.g.Nodes, &Plain{ID: id, Attrs: attrs})
	return nil
}

func (p *parser) parseEdgeStmt() error {
	s := p.s
	m := s.mark()
	fail := func(err error) error {
		s.reset(m)
		return rule("EdgeStatement", err)
	}

	s.spaces()
	from, err := s.integer()
	if err != nil {
		return fail(err)
	}
	if err := s.spaces1(); err != nil {
		return fail(err)
	}

	var directed bool
	switch {
	case s.literal("->") == nil:
		directed = true
	case s.literal("--") == nil:
		directed = false
	default:
		return fail(s.errf("expected '->' or '--'"))
	}

	if err := s.spaces1(); err != nil {
		return fail(err)
	}
	to, err := s.integer()
	if err != nil {
		return fail(err)
	}

	attrs, err := p.parseOptionalAttrList()
	if err != nil {
		return fail(err)
	}

	s.spaces()
	if err := s.literal(";"); err != nil {
		return fail(err)
	}
	s.spaces()
	if err := s.newline(); err != nil {
		return fail(err)
	}

	p.g.Edges = append(p.g.Edges, Edge{From: from, To: to, Directed: directed, Attrs: attrs})
	return nil
}

// parseOptionalAttrList consumes a bracketed attribute list if one follows,
// with optional leading whitespace. A present-but-malformed list is an
// error; an absent list is not.
func (p *parser) parseOptionalAttrList() ([]Attr, error) {
	s := p.s
	m := s.mark()
	s.spaces()
	if s.eof() || s.peek() != '[' {
		s.reset(m)
		return nil, nil
	}
	return p.parseAttrList()
}

func (p *parser) parseAttrList() ([]Attr, error) {
	s := p.s
	wrap := func(err error) ([]Attr, error) {
		return nil, rule("AttributeList", err)
	}

	if err := s.literal("["); err != nil {
		return wrap(err)
	}

	var attrs []Attr
	for {
		s.spaces()
		a, err := p.parseAttr()
		if err != nil {
			return wrap(err)
		}
		attrs = append(attrs, a)
		s.spaces()
		if s.literal(",") == nil {
			continue
		}
		break
	}

	if err := s.literal("]"); err != nil {
		return wrap(err)
	}
	return attrs, nil
}

func (p *parser) parseAttr() (Attr, error) {
	s := p.s
	key, err := s.identifier()
	if err != nil {
		return Attr{}, err
	}
	s.spaces()
	if err := s.literal("="); err != nil {
		return Attr{}, err
	}
	s.spaces()
	val, err := p.parseID()
	if err != nil {
		return Attr{}, err
	}
	return Attr{Key: key, Value: val}, nil
}

// parseID parses any of the four identifier variants: quoted string,
// HTML-like string, number, or bare name.
func (p *parser) parseID() (GraphID, error) {
	s := p.s
	switch {
	case !s.eof() && s.peek() == '"':
		str, err := s.quoted()
		if err != nil {
			return GraphID{}, rule("GraphID", err)
		}
		return Quoted(str), nil
	case !s.eof() && s.peek() == '<':
		str, err := s.htmlString()
		if err != nil {
			return GraphID{}, rule("GraphID", err)
		}
		return HTML(str), nil
	}
	if f, err := s.number(); err == nil {
		return Number(f), nil
	}
	if name, err := s.identifier(); err == nil {
		return Name(name), nil
	}
	return GraphID{}, rule("GraphID", s.errf("expected identifier, number, quoted string, or HTML string"))
}
