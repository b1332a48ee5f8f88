package model

// EnemySpec describes the enemy a calculation is made against.
// Resistances are percents and may be negative; elements absent from the
// map use the configured default resistance.
type EnemySpec struct {
	Level                   int                 `json:"level" yaml:"level"`
	Resistances             map[Element]float64 `json:"resistances,omitempty" yaml:"resistances,omitempty"`
	DefenseReductionPercent float64             `json:"defense_reduction_percent,omitempty" yaml:"defense_reduction_percent,omitempty"`
}

// Clone returns a deep copy of the spec.
func (e EnemySpec) Clone() EnemySpec {
	c := e
	c.Resistances = make(map[Element]float64, len(e.Resistances))
	for k, v := range e.Resistances {
		c.Resistances[k] = v
	}
	return c
}
