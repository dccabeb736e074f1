package store_test

import "testing"

// ─── Transfer rules ─────────────────────────────────────────────────────────

func TestTransferRule_ForwardOrder(t *testing.T) {
	s := newTestStore(t)

	rule, reversed, err := s.TransferRule("AR", "EU")
	if err != nil {
		t.Fatalf("TransferRule error: %v", err)
	}
	if rule == nil {
		t.Fatal("AR→EU rule not found")
	}
	if reversed {
		t.Error("forward lookup should not be reversed")
	}
	if rule.AdequacyStatus != "adequacy" {
		t.Errorf("AdequacyStatus = %q, want adequacy", rule.AdequacyStatus)
	}
}

func TestTransferRule_ReversedOrder(t *testing.T) {
	s := newTestStore(t)

	forward, _, err := s.TransferRule("AR", "EU")
	if err != nil {
		t.Fatal(err)
	}

	rule, reversed, err := s.TransferRule("EU", "AR")
	if err != nil {
		t.Fatalf("TransferRule error: %v", err)
	}
	if rule == nil {
		t.Fatal("EU→AR lookup should find the AR→EU row")
	}
	if !reversed {
		t.Error("reversed flag should be set when the row was stored the other way")
	}
	// Identical payload regardless of query direction.
	if rule.Source != forward.Source || rule.Dest != forward.Dest ||
		rule.AdequacyStatus != forward.AdequacyStatus || rule.Framework != forward.Framework {
		t.Errorf("payload differs by direction: %+v vs %+v", rule, forward)
	}
}

func TestTransferRule_ExactlyOneDirectionReversed(t *testing.T) {
	s := newTestStore(t)

	pairs := [][2]string{
		{"AR", "EU"},
		{"UY", "EU"},
		{"EU", "CL"}, // seeded EU-first
		{"MX", "US"},
	}
	for _, p := range pairs {
		_, fwd, err := s.TransferRule(p[0], p[1])
		if err != nil {
			t.Fatal(err)
		}
		_, rev, err := s.TransferRule(p[1], p[0])
		if err != nil {
			t.Fatal(err)
		}
		if fwd == rev {
			t.Errorf("pair %v: reversed flags = (%v, %v), exactly one must be true", p, fwd, rev)
		}
	}
}

func TestTransferRule_NormalizesCase(t *testing.T) {
	s := newTestStore(t)

	rule, _, err := s.TransferRule(" ar ", "eu")
	if err != nil {
		t.Fatal(err)
	}
	if rule == nil {
		t.Fatal("lowercase input should still resolve")
	}
}

func TestTransferRule_Absent(t *testing.T) {
	s := newTestStore(t)

	rule, reversed, err := s.TransferRule("PE", "NZ")
	if err != nil {
		t.Fatalf("TransferRule error: %v", err)
	}
	if rule != nil {
		t.Errorf("expected no rule for PE/NZ, got %+v", rule)
	}
	if reversed {
		t.Error("reversed must be false when nothing was found")
	}
}

// ─── Mutual recognition ─────────────────────────────────────────────────────

func TestMutualRecognitions_OrderIndependent(t *testing.T) {
	s := newTestStore(t)

	ab, err := s.MutualRecognitions("BR", "AR", "")
	if err != nil {
		t.Fatal(err)
	}
	ba, err := s.MutualRecognitions("AR", "BR", "")
	if err != nil {
		t.Fatal(err)
	}

	if len(ab) == 0 {
		t.Fatal("expected recognition rows for BR/AR")
	}
	if len(ab) != len(ba) {
		t.Fatalf("row counts differ by direction: %d vs %d", len(ab), len(ba))
	}
	for i := range ab {
		if ab[i].ID != ba[i].ID {
			t.Errorf("row %d differs by direction: #%d vs #%d", i, ab[i].ID, ba[i].ID)
		}
	}
}

func TestMutualRecognitions_UnionOfBothStorageDirections(t *testing.T) {
	s := newTestStore(t)

	// Seed stores BR/AR rows under both (BR,AR) and (AR,BR); the union
	// query must return all of them in one pass.
	rows, err := s.MutualRecognitions("BR", "AR", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) < 3 {
		t.Errorf("got %d rows, want at least 3 (both storage directions)", len(rows))
	}
}

func TestMutualRecognitions_SortedByDomain(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.MutualRecognitions("BR", "AR", "")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Domain > rows[i].Domain {
			t.Fatalf("rows not sorted by domain: %q before %q", rows[i-1].Domain, rows[i].Domain)
		}
	}
}

func TestMutualRecognitions_DomainFilterExact(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.MutualRecognitions("BR", "AR", "customs_procedures")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) == 0 {
		t.Fatal("expected customs_procedures row for BR/AR")
	}
	for _, r := range rows {
		if r.Domain != "customs_procedures" {
			t.Errorf("domain filter leaked row with domain %q", r.Domain)
		}
	}

	// Filter is case-sensitive — an uppercased domain matches nothing.
	none, err := s.MutualRecognitions("BR", "AR", "CUSTOMS_PROCEDURES")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("uppercased domain matched %d rows, want 0", len(none))
	}
}

func TestMutualRecognitions_JoinsAgreementName(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.MutualRecognitions("BR", "AR", "customs_procedures")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) == 0 {
		t.Fatal("no rows")
	}
	if rows[0].AgreementName == "" {
		t.Error("referenced agreement title should be joined in")
	}
}

func TestMutualRecognitions_NoReference(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.MutualRecognitions("CL", "NZ", "digital_identities")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].AgreementCode != "" || rows[0].AgreementName != "" {
		t.Errorf("expected empty agreement reference, got %q / %q",
			rows[0].AgreementCode, rows[0].AgreementName)
	}
}

func TestMutualRecognitions_Absent(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.MutualRecognitions("VE", "NZ", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows for VE/NZ, got %d", len(rows))
	}
}

// ─── Digital obligations ────────────────────────────────────────────────────

func TestDigitalObligations_SingleCode(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.DigitalObligations([]string{"uy"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) == 0 {
		t.Fatal("expected obligations for UY")
	}
	for _, d := range rows {
		found := false
		for _, c := range d.Countries {
			if c == "UY" {
				found = true
			}
		}
		if !found {
			t.Errorf("row %s/%s matched UY but parties are %v", d.AgreementCode, d.Category, d.Countries)
		}
	}
}

func TestDigitalObligations_UnionNoDuplicates(t *testing.T) {
	s := newTestStore(t)

	// CL and SG co-occur in every DEPA row; each row must appear once.
	rows, err := s.DigitalObligations([]string{"CL", "SG"})
	if err != nil {
		t.Fatal(err)
	}
	seen := map[int64]bool{}
	for _, d := range rows {
		if seen[d.ID] {
			t.Errorf("row #%d returned twice", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestDigitalObligations_Monotone(t *testing.T) {
	s := newTestStore(t)

	sub, err := s.DigitalObligations([]string{"CL"})
	if err != nil {
		t.Fatal(err)
	}
	super, err := s.DigitalObligations([]string{"CL", "US"})
	if err != nil {
		t.Fatal(err)
	}
	if len(super) < len(sub) {
		t.Fatalf("superset of codes returned fewer rows: %d < %d", len(super), len(sub))
	}
	subIDs := map[int64]bool{}
	for _, d := range sub {
		subIDs[d.ID] = true
	}
	superIDs := map[int64]bool{}
	for _, d := range super {
		superIDs[d.ID] = true
	}
	for id := range subIDs {
		if !superIDs[id] {
			t.Errorf("row #%d in subset result but missing from superset result", id)
		}
	}
}

func TestDigitalObligations_TokenExactMatch(t *testing.T) {
	s := newTestStore(t)

	// "S" is a prefix of the stored "SG" token and must not match it.
	rows, err := s.DigitalObligations([]string{"S"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("partial token %q matched %d rows, want 0", "S", len(rows))
	}
}

func TestDigitalObligations_LikeWildcardsMatchLiterally(t *testing.T) {
	s := newTestStore(t)

	// LIKE metacharacters in a code must not act as wildcards: "A_"
	// would otherwise match any two-letter token starting with A, and
	// "%" would match every row.
	for _, code := range []string{"A_", "%", "_", "%,%"} {
		rows, err := s.DigitalObligations([]string{code})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 0 {
			t.Errorf("code %q matched %d rows, want 0", code, len(rows))
		}
	}
}

func TestDigitalObligations_UnknownCode(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.DigitalObligations([]string{"ZZ"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows for ZZ, got %d", len(rows))
	}
}

func TestDigitalObligations_SortedByAgreementThenCategory(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.DigitalObligations([]string{"CL", "AR", "MX"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.AgreementCode > cur.AgreementCode {
			t.Fatalf("not sorted by agreement: %q before %q", prev.AgreementCode, cur.AgreementCode)
		}
		if prev.AgreementCode == cur.AgreementCode && prev.Category > cur.Category {
			t.Fatalf("not sorted by category within %s: %q before %q",
				cur.AgreementCode, prev.Category, cur.Category)
		}
	}
}

func TestDigitalObligations_EmptyInput(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.DigitalObligations(nil)
	if err != nil {
		t.Fatal(err)
	}
	if rows != nil {
		t.Errorf("expected nil for empty code list, got %d rows", len(rows))
	}
}
