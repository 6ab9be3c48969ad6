package sheetcalc

// Sheet ties a Store to an Evaluator and offers the set/get entry points.
type Sheet struct {
	store *Store
	eval  *Evaluator
}

func NewSheet(opts ...Option) *Sheet {
	store := NewStore()
	return &Sheet{
		store: store,
		eval:  NewEvaluator(store, opts...),
	}
}

func (s *Sheet) Set(id string, v Value) {
	s.store.Set(id, v)
}

// SetInt and SetFormula mirror the two kinds a caller usually stores.
func (s *Sheet) SetInt(id string, i int) {
	s.store.Set(id, Literal(i))
}

func (s *Sheet) SetFormula(id, text string) {
	s.store.Set(id, Formula(text))
}

// Get returns the evaluated integer value of id.
func (s *Sheet) Get(id string) (int, error) {
	return s.eval.Resolve(id)
}

func (s *Sheet) Store() *Store {
	return s.store
}

func (s *Sheet) Evaluator() *Evaluator {
	return s.eval
}
