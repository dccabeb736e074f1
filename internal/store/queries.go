package store

import (
	"database/sql"
	"fmt"

	"github.com/svillegasm/latam-trade-mcp/internal/countries"
)

// ─── Transfer rules (single-row symmetric lookup) ───────────────────────────

// TransferRule locates the bilateral data-transfer rule between two
// entities. The relation is unordered but stored keyed by (source,
// dest), so the exact order is tried first and the reversed order
// second. The returned reversed flag is true when the row was found via
// the reversed attempt — callers need it because the rule's direction
// semantics (framework text, mechanisms) were authored for the opposite
// direction.
//
// Absence is not an error: (nil, false, nil) means no rule is stored
// for the pair in either order.
func (s *Store) TransferRule(source, dest string) (*TransferRule, bool, error) {
	source = countries.Normalize(source)
	dest = countries.Normalize(dest)

	rule, err := s.transferRuleExact(source, dest)
	if err != nil {
		return nil, false, err
	}
	if rule != nil {
		return rule, false, nil
	}

	rule, err = s.transferRuleExact(dest, source)
	if err != nil {
		return nil, false, err
	}
	if rule != nil {
		return rule, true, nil
	}

	return nil, false, nil
}

func (s *Store) transferRuleExact(source, dest string) (*TransferRule, error) {
	row := s.db.QueryRow(
		`SELECT id, source, dest, adequacy_status, mechanisms, framework, notes
		 FROM transfer_rules
		 WHERE source = ? AND dest = ?`,
		source, dest,
	)

	var r TransferRule
	var mechanisms string
	err := row.Scan(&r.ID, &r.Source, &r.Dest, &r.AdequacyStatus, &mechanisms, &r.Framework, &r.Notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("transfer rule lookup: %w", err)
	}
	r.Mechanisms = splitList(mechanisms)
	return &r, nil
}

// ─── Mutual recognition (multi-row symmetric lookup) ────────────────────────

// MutualRecognitions returns every recognition arrangement between two
// entities, searching both storage directions in one pass (a true
// union, not a fallback). The optional domain filter is exact and
// case-sensitive. Rows come back sorted by domain for deterministic
// output, each joined with the human title of its referenced agreement
// when one exists.
func (s *Store) MutualRecognitions(a, b, domain string) ([]Recognition, error) {
	a = countries.Normalize(a)
	b = countries.Normalize(b)

	query := `
		SELECT r.id, r.country_a, r.country_b, r.domain, r.description,
		       COALESCE(r.agreement_code, ''), COALESCE(ag.name, '')
		FROM mutual_recognition r
		LEFT JOIN agreements ag ON ag.code = r.agreement_code
		WHERE ((r.country_a = ? AND r.country_b = ?)
		    OR (r.country_a = ? AND r.country_b = ?))
	`
	args := []any{a, b, b, a}

	if domain != "" {
		query += " AND r.domain = ?"
		args = append(args, domain)
	}

	query += " ORDER BY r.domain ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("mutual recognition lookup: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Recognition
	for rows.Next() {
		var r Recognition
		if err := rows.Scan(
			&r.ID, &r.CountryA, &r.CountryB, &r.Domain, &r.Description,
			&r.AgreementCode, &r.AgreementName,
		); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ─── Digital obligations (membership scan) ──────────────────────────────────

// DigitalObligations returns the union of obligation rows whose party
// list contains any of the given codes. Matching is delimiter-aware
// exact token matching against the comma-joined country column, so a
// two-letter code never over-matches inside a longer token. A row
// matching several requested codes appears once. Rows are sorted by
// agreement code, then category.
//
// The codes slice must be non-empty; callers validate before reaching
// the store.
func (s *Store) DigitalObligations(codes []string) ([]DigitalObligation, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	query := `
		SELECT d.id, d.agreement_code, COALESCE(ag.name, ''),
		       d.category, d.obligation, d.countries, d.binding
		FROM digital_obligations d
		LEFT JOIN agreements ag ON ag.code = d.agreement_code
		WHERE (`
	var args []any
	for i, code := range codes {
		if i > 0 {
			query += " OR "
		}
		query += `(',' || d.countries || ',') LIKE ? ESCAPE '\'`
		args = append(args, "%,"+escapeLike(countries.Normalize(code))+",%")
	}
	query += `)
		ORDER BY d.agreement_code ASC, d.category ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("digital obligations lookup: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []DigitalObligation
	for rows.Next() {
		var d DigitalObligation
		var parties string
		var binding int
		if err := rows.Scan(
			&d.ID, &d.AgreementCode, &d.AgreementName,
			&d.Category, &d.Obligation, &parties, &binding,
		); err != nil {
			return nil, err
		}
		d.Countries = splitList(parties)
		d.Binding = binding != 0
		results = append(results, d)
	}
	return results, rows.Err()
}

// ─── Agreement catalogue ─────────────────────────────────────────────────────

// GetAgreement fetches a single agreement by its code, including the
// full text. (nil, nil) means the code is not in the catalogue.
func (s *Store) GetAgreement(code string) (*Agreement, error) {
	row := s.db.QueryRow(
		`SELECT id, code, name, parties, status, signed, in_force, topics, summary, full_text
		 FROM agreements WHERE code = ?`,
		countries.Normalize(code),
	)

	var a Agreement
	var parties, topics string
	err := row.Scan(&a.ID, &a.Code, &a.Name, &parties, &a.Status, &a.Signed, &a.InForce, &topics, &a.Summary, &a.FullText)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get agreement: %w", err)
	}
	a.Parties = splitList(parties)
	a.Topics = splitList(topics)
	return &a, nil
}

// ListAgreements returns catalogue entries (without full text) matching
// the given filters. The country filter is a delimiter-aware token
// match on the party list; the topic filter likewise on the topic list.
func (s *Store) ListAgreements(opts ListOptions) ([]Agreement, error) {
	query := `
		SELECT id, code, name, parties, status, signed, in_force, topics, summary
		FROM agreements
		WHERE 1=1
	`
	var args []any

	if opts.Country != "" {
		query += ` AND (',' || parties || ',') LIKE ? ESCAPE '\'`
		args = append(args, "%,"+escapeLike(countries.Normalize(opts.Country))+",%")
	}
	if opts.Status != "" {
		query += " AND status = ?"
		args = append(args, opts.Status)
	}
	if opts.Topic != "" {
		query += ` AND (',' || topics || ',') LIKE ? ESCAPE '\'`
		args = append(args, "%,"+escapeLike(opts.Topic)+",%")
	}

	query += " ORDER BY code ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Agreement
	for rows.Next() {
		var a Agreement
		var parties, topics string
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &parties, &a.Status, &a.Signed, &a.InForce, &topics, &a.Summary); err != nil {
			return nil, err
		}
		a.Parties = splitList(parties)
		a.Topics = splitList(topics)
		results = append(results, a)
	}
	return results, rows.Err()
}

// SearchAgreements performs FTS5 full-text search over agreement names,
// summaries, and full texts, ordered by BM25 rank with a snippet per
// hit. An empty query returns no hits; callers validate first.
func (s *Store) SearchAgreements(query string, limit int) ([]SearchHit, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	ftsQuery := sanitizeFTS(query)
	if ftsQuery == "" {
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT a.code, a.name, a.status,
		       snippet(agreements_fts, -1, '[', ']', '…', 24),
		       fts.rank
		FROM agreements_fts fts
		JOIN agreements a ON a.id = fts.rowid
		WHERE agreements_fts MATCH ?
		ORDER BY fts.rank
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []SearchHit
	for rows.Next() {
		var h SearchHit
		if err := rows.Scan(&h.Code, &h.Name, &h.Status, &h.Snippet, &h.Rank); err != nil {
			return nil, err
		}
		results = append(results, h)
	}
	return results, rows.Err()
}

// Countries returns the country reference table sorted by code.
func (s *Store) Countries() ([]Country, error) {
	rows, err := s.db.Query(`SELECT code, name, region FROM countries ORDER BY code ASC`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Country
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.Code, &c.Name, &c.Region); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// Stats returns aggregate catalogue counts.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	counts := []struct {
		table string
		dest  *int
	}{
		{"agreements", &stats.Agreements},
		{"countries", &stats.Countries},
		{"transfer_rules", &stats.TransferRules},
		{"mutual_recognition", &stats.Recognitions},
		{"digital_obligations", &stats.DigitalObligations},
	}
	for _, c := range counts {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("stats: count %s: %w", c.table, err)
		}
	}
	return stats, nil
}
