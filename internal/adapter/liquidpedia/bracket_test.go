package liquidpedia

import "testing"

const bracketPageHTML = `<html><body>
<h3>Playoffs</h3>
<div>
  <h3>Upper Bracket</h3>
  <div><div class="bracket-scroller">
    <div class="bracket-column-matches">
      <div class="bracket-cell-r1">
        <div class="team-template-team-bracket"><span>Alpha</span></div>
        <div class="bracket-score">2</div>
      </div>
      <div class="bracket-cell-r1">
        <div class="team-template-team-bracket"><span>Beta</span></div>
        <div class="bracket-score">0</div>
      </div>
    </div>
    <div class="bracket-column-matches">
      <div class="bracket-cell-r2">
        <div class="team-template-team-bracket"><span>Alpha</span></div>
        <div class="bracket-score">1</div>
      </div>
      <div class="bracket-cell-r2">
        <div class="team-template-team-bracket"><span>TBD</span></div>
      </div>
    </div>
  </div></div>
</div>
</body></html>`

func TestFindBrackets(t *testing.T) {
	brackets := FindBrackets(parseDoc(t, bracketPageHTML))
	if len(brackets) != 1 {
		t.Fatalf("got %d brackets, want 1", len(brackets))
	}

	b := brackets[0]
	if b.Name != "Upper Bracket" {
		t.Errorf("Name = %q, want Upper Bracket", b.Name)
	}
	if len(b.Rounds) != 2 {
		t.Fatalf("got %d rounds, want 2", len(b.Rounds))
	}
	first := b.Rounds[0]
	if len(first) != 2 || first[0].Name != "Alpha" || first[0].Score != "2" || first[1].Name != "Beta" || first[1].Score != "0" {
		t.Errorf("first round = %+v", first)
	}
	// 比分缺失的格子跳过
	second := b.Rounds[1]
	if len(second) != 1 || second[0].Name != "Alpha" || second[0].Score != "1" {
		t.Errorf("second round = %+v", second)
	}
}

func TestFindBracketsNone(t *testing.T) {
	brackets := FindBrackets(parseDoc(t, `<html><body><p>no brackets</p></body></html>`))
	if len(brackets) != 0 {
		t.Errorf("got %d brackets from page without scroller, want 0", len(brackets))
	}
}
