package highlight

import (
	"testing"

	"github.com/AnTengye/contractstudio/document"
	"github.com/google/go-cmp/cmp"
)

func TestSplitStandaloneTerm(t *testing.T) {
	got := For("CONTRATANTE").Split("O CONTRATANTE paga.")
	want := []document.Segment{
		{Text: "O "},
		{Text: "CONTRATANTE", Emphasized: true},
		{Text: " paga."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitDoesNotMatchLongerWord(t *testing.T) {
	got := For("CONTRATANTE").Split("Os CONTRATANTES pagam.")
	want := []document.Segment{{Text: "Os CONTRATANTES pagam."}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitCaseInsensitive(t *testing.T) {
	got := New([]string{"CONTRATADA"}).Split("a contratada e a Contratada")
	var emphasized []string
	for _, s := range got {
		if s.Emphasized {
			emphasized = append(emphasized, s.Text)
		}
	}
	if diff := cmp.Diff([]string{"contratada", "Contratada"}, emphasized); diff != "" {
		t.Errorf("emphasized mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitAccentedBoundaries(t *testing.T) {
	h := New([]string{"AUTORIZAÇÃO", "CONTRATO"})

	got := h.Split("Esta AUTORIZAÇÃO integra o CONTRATOS e o CONTRATO.")
	want := []document.Segment{
		{Text: "Esta "},
		{Text: "AUTORIZAÇÃO", Emphasized: true},
		{Text: " integra o CONTRATOS e o "},
		{Text: "CONTRATO", Emphasized: true},
		{Text: "."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}

	// an accented letter glued to a term is part of the word
	got = h.Split("CONTRATOÉ")
	if len(got) != 1 || got[0].Emphasized {
		t.Errorf("Expected no match inside a longer word, got %+v", got)
	}
}

func TestSplitPrefersLongestTerm(t *testing.T) {
	h := New([]string{"CONTRATO", "CONTRATO DE PERMUTA"})
	got := h.Split("CONTRATO DE PERMUTA firmado")
	want := []document.Segment{
		{Text: "CONTRATO DE PERMUTA", Emphasized: true},
		{Text: " firmado"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitEdgeCases(t *testing.T) {
	if got := For("CONTRATANTE").Split(""); len(got) != 1 || got[0].Text != "" {
		t.Errorf("Expected a single empty segment, got %+v", got)
	}

	got := For().Split("sem termos definidos")
	want := []document.Segment{{Text: "sem termos definidos"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}

	got = New([]string{"", "  "}).Split("texto")
	if len(got) != 1 || got[0].Text != "texto" || got[0].Emphasized {
		t.Errorf("Expected blank terms to be ignored, got %+v", got)
	}
}

func TestSplitRoundTrip(t *testing.T) {
	terms := []string{"CONTRATANTE", "CONTRATANTES", "CONTRATADA", "CONTRATO DE PRESTAÇÃO DE SERVIÇOS"}
	inputs := []string{
		"O CONTRATANTE e a CONTRATADA firmam o CONTRATO DE PRESTAÇÃO DE SERVIÇOS.",
		"Os CONTRATANTES, solidariamente, pagarão à CONTRATADA.",
		"CONTRATANTE",
		"  espaços  e\nquebras de linha CONTRATADA\n",
		"Nenhum termo aqui.",
		"contratante-contratada/CONTRATANTES",
	}

	h := New(terms)
	for _, in := range inputs {
		if got := document.Join(h.Split(in)); got != in {
			t.Errorf("Round trip failed: expected %q, got %q", in, got)
		}
	}
}

func TestSplitAdjacentTerms(t *testing.T) {
	got := For("CONTRATANTE", "CONTRATADA").Split("CONTRATANTE/CONTRATADA")
	want := []document.Segment{
		{Text: "CONTRATANTE", Emphasized: true},
		{Text: "/"},
		{Text: "CONTRATADA", Emphasized: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestForReusesCompiledHighlighter(t *testing.T) {
	a := For("CONTRATANTE", "CONTRATADA")
	b := For("CONTRATANTE", "CONTRATADA")
	if a != b {
		t.Error("Expected the same highlighter for the same term list")
	}
	if c := For("CONTRATADA"); c == a {
		t.Error("Expected a different highlighter for a different term list")
	}
}
