package sudoku

import "context"

// fakeOracle is a scripted stand-in for a decision procedure: it records
// assertions, answers checks from a fixed verdict list, and serves models
// from a queue. Push/Pop maintain a real assertion stack so scope
// behavior can be observed.
type fakeOracle struct {
	nextVar   int
	asserted  []Constraint
	scopes    []int
	verdicts  []Verdict
	models    []Model
	checks    int
	pushes    int
	pops      int
	assertErr error
}

func (f *fakeOracle) NewVar() Var {
	v := Var(f.nextVar)
	f.nextVar++
	return v
}

func (f *fakeOracle) Assert(c Constraint) error {
	if f.assertErr != nil {
		return f.assertErr
	}
	f.asserted = append(f.asserted, c)
	return nil
}

func (f *fakeOracle) Check(context.Context) Verdict {
	var v Verdict = Unknown
	if f.checks < len(f.verdicts) {
		v = f.verdicts[f.checks]
	}
	f.checks++
	return v
}

func (f *fakeOracle) Model() (Model, error) {
	if len(f.models) == 0 {
		return nil, ErrNoModel
	}
	m := f.models[0]
	f.models = f.models[1:]
	return m, nil
}

func (f *fakeOracle) Push() {
	f.pushes++
	f.scopes = append(f.scopes, len(f.asserted))
}

func (f *fakeOracle) Pop() {
	if len(f.scopes) == 0 {
		return
	}
	f.pops++
	mark := f.scopes[len(f.scopes)-1]
	f.scopes = f.scopes[:len(f.scopes)-1]
	f.asserted = f.asserted[:mark]
}

// solvedGrid returns a valid completed sudoku built from the cyclic
// pattern (3*row + row/3 + col) mod 9 + 1.
func solvedGrid() Solution {
	var s Solution
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			s[row][col] = (3*row+row/3+col)%9 + 1
		}
	}
	return s
}

// modelOf builds the model a row-major grid allocation would produce for
// the given solution.
func modelOf(s Solution) Model {
	m := make(Model, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			m[Var(row*Size+col)] = s[row][col]
		}
	}
	return m
}

// fixedRuleset encodes a full solution as 81 clue placements.
func fixedRuleset(s Solution) Ruleset {
	var rs Ruleset
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			rs.Fixed = append(rs.Fixed, FixedCell{Row: row, Col: col, Value: s[row][col]})
		}
	}
	return rs
}

// validSolution checks the structural sudoku rules on a completed grid.
func validSolution(s Solution) bool {
	groupOK := func(vals [Size]int) bool {
		var seen [MaxValue + 1]bool
		for _, v := range vals {
			if v < MinValue || v > MaxValue || seen[v] {
				return false
			}
			seen[v] = true
		}
		return true
	}
	for i := 0; i < Size; i++ {
		var row, col, box [Size]int
		for j := 0; j < Size; j++ {
			row[j] = s[i][j]
			col[j] = s[j][i]
			box[j] = s[(i/BoxSize)*BoxSize+j/BoxSize][(i%BoxSize)*BoxSize+j%BoxSize]
		}
		if !groupOK(row) || !groupOK(col) || !groupOK(box) {
			return false
		}
	}
	return true
}
