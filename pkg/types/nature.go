package types

// Nature is a derived trait of a roster entry. It is a pure function of
// the personality seed (index = personality mod 25) and has no storage of
// its own. Increased/Decreased are canonical stat indices, both -1 for
// the five neutral natures.
type Nature struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Increased int    `json:"increased"`
	Decreased int    `json:"decreased"`
}

// Neutral reports whether the nature modifies no stats.
func (n Nature) Neutral() bool { return n.Increased < 0 }

// natureTable is the fixed 25-entry nature table. Order matches the
// game's personality mod 25 indexing and must never be rearranged.
var natureTable = [25]Nature{
	{0, "Hardy", -1, -1},
	{1, "Lonely", StatAttack, StatDefense},
	{2, "Brave", StatAttack, StatSpeed},
	{3, "Adamant", StatAttack, StatSpAttack},
	{4, "Naughty", StatAttack, StatSpDefense},
	{5, "Bold", StatDefense, StatAttack},
	{6, "Docile", -1, -1},
	{7, "Relaxed", StatDefense, StatSpeed},
	{8, "Impish", StatDefense, StatSpAttack},
	{9, "Lax", StatDefense, StatSpDefense},
	{10, "Timid", StatSpeed, StatAttack},
	{11, "Hasty", StatSpeed, StatDefense},
	{12, "Serious", -1, -1},
	{13, "Jolly", StatSpeed, StatSpAttack},
	{14, "Naive", StatSpeed, StatSpDefense},
	{15, "Modest", StatSpAttack, StatAttack},
	{16, "Mild", StatSpAttack, StatDefense},
	{17, "Quiet", StatSpAttack, StatSpeed},
	{18, "Bashful", -1, -1},
	{19, "Rash", StatSpAttack, StatSpDefense},
	{20, "Calm", StatSpDefense, StatAttack},
	{21, "Gentle", StatSpDefense, StatDefense},
	{22, "Sassy", StatSpDefense, StatSpeed},
	{23, "Careful", StatSpDefense, StatSpAttack},
	{24, "Quirky", -1, -1},
}

// NatureOf derives the nature from a personality seed.
func NatureOf(personality uint32) Nature {
	return natureTable[personality%25]
}

// NatureByIndex returns the nature for a table index in [0,25).
func NatureByIndex(i int) (Nature, bool) {
	if i < 0 || i >= len(natureTable) {
		return Nature{}, false
	}
	return natureTable[i], true
}
