package store

import "fmt"

// DataVersion is the freshness marker for the built-in catalogue. It is
// echoed in every tool response's meta block.
const DataVersion = "2025-06"

// seedIfEmpty loads the built-in catalogue when the agreements table
// has no rows. After seeding the store is only read.
func (s *Store) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM agreements").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range seedCountries {
		if _, err := tx.Exec(
			`INSERT INTO countries (code, name, region) VALUES (?, ?, ?)`,
			c.Code, c.Name, c.Region,
		); err != nil {
			return fmt.Errorf("country %s: %w", c.Code, err)
		}
	}

	for _, a := range seedAgreements {
		if _, err := tx.Exec(
			`INSERT INTO agreements (code, name, parties, status, signed, in_force, topics, summary, full_text)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.Code, a.Name, joinList(a.Parties), a.Status, a.Signed, a.InForce,
			joinList(a.Topics), a.Summary, a.FullText,
		); err != nil {
			return fmt.Errorf("agreement %s: %w", a.Code, err)
		}
	}

	for _, r := range seedTransferRules {
		if _, err := tx.Exec(
			`INSERT INTO transfer_rules (source, dest, adequacy_status, mechanisms, framework, notes)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.Source, r.Dest, r.AdequacyStatus, joinList(r.Mechanisms), r.Framework, r.Notes,
		); err != nil {
			return fmt.Errorf("transfer rule %s→%s: %w", r.Source, r.Dest, err)
		}
	}

	for _, r := range seedRecognitions {
		code := any(r.AgreementCode)
		if r.AgreementCode == "" {
			code = nil
		}
		if _, err := tx.Exec(
			`INSERT INTO mutual_recognition (country_a, country_b, domain, description, agreement_code)
			 VALUES (?, ?, ?, ?, ?)`,
			r.CountryA, r.CountryB, r.Domain, r.Description, code,
		); err != nil {
			return fmt.Errorf("recognition %s/%s/%s: %w", r.CountryA, r.CountryB, r.Domain, err)
		}
	}

	for _, d := range seedObligations {
		binding := 0
		if d.Binding {
			binding = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO digital_obligations (agreement_code, category, obligation, countries, binding)
			 VALUES (?, ?, ?, ?, ?)`,
			d.AgreementCode, d.Category, d.Obligation, joinList(d.Countries), binding,
		); err != nil {
			return fmt.Errorf("obligation %s/%s: %w", d.AgreementCode, d.Category, err)
		}
	}

	return tx.Commit()
}

// ─── Seed data ───────────────────────────────────────────────────────────────

var seedCountries = []Country{
	{Code: "AR", Name: "Argentina", Region: "South America"},
	{Code: "BO", Name: "Bolivia", Region: "South America"},
	{Code: "BR", Name: "Brazil", Region: "South America"},
	{Code: "CL", Name: "Chile", Region: "South America"},
	{Code: "CO", Name: "Colombia", Region: "South America"},
	{Code: "CR", Name: "Costa Rica", Region: "Central America"},
	{Code: "DO", Name: "Dominican Republic", Region: "Caribbean"},
	{Code: "EC", Name: "Ecuador", Region: "South America"},
	{Code: "GT", Name: "Guatemala", Region: "Central America"},
	{Code: "HN", Name: "Honduras", Region: "Central America"},
	{Code: "MX", Name: "Mexico", Region: "North America"},
	{Code: "NI", Name: "Nicaragua", Region: "Central America"},
	{Code: "PA", Name: "Panama", Region: "Central America"},
	{Code: "PE", Name: "Peru", Region: "South America"},
	{Code: "PY", Name: "Paraguay", Region: "South America"},
	{Code: "SV", Name: "El Salvador", Region: "Central America"},
	{Code: "UY", Name: "Uruguay", Region: "South America"},
	{Code: "VE", Name: "Venezuela", Region: "South America"},
	{Code: "EU", Name: "European Union", Region: "Europe"},
	{Code: "US", Name: "United States", Region: "North America"},
	{Code: "SG", Name: "Singapore", Region: "Asia"},
	{Code: "NZ", Name: "New Zealand", Region: "Oceania"},
}

var seedAgreements = []Agreement{
	{
		Code:    "MERCOSUR",
		Name:    "Southern Common Market (Treaty of Asunción)",
		Parties: []string{"AR", "BR", "PY", "UY"},
		Status:  "in_force",
		Signed:  "1991-03-26",
		InForce: "1991-11-29",
		Topics:  []string{"customs_union", "goods", "services"},
		Summary: "Customs union establishing free movement of goods, services, and productive factors among Argentina, Brazil, Paraguay, and Uruguay, with a common external tariff.",
		FullText: "The States Parties decide to establish a common market, which shall be in place by 31 December 1994 and shall be called the Common Market of the South (MERCOSUR). " +
			"This common market involves the free movement of goods, services and factors of production between countries through, inter alia, the elimination of customs duties and non-tariff restrictions on the movement of goods. " +
			"It further involves the establishment of a common external tariff and the adoption of a common trade policy in relation to third States, and the coordination of macroeconomic and sectoral policies.",
	},
	{
		Code:    "MERCOSUR-ECOMMERCE",
		Name:    "MERCOSUR Agreement on Electronic Commerce",
		Parties: []string{"AR", "BR", "PY", "UY"},
		Status:  "in_force",
		Signed:  "2021-04-29",
		InForce: "2023-01-01",
		Topics:  []string{"digital_trade", "ecommerce", "data_flows"},
		Summary: "First MERCOSUR instrument dedicated to electronic commerce, covering cross-border data flows, consumer protection online, electronic signatures, and unsolicited commercial messages.",
		FullText: "The Parties shall allow the cross-border transfer of information by electronic means, including personal information, when this activity is for the conduct of the business of a covered person, subject to the legal framework of each Party on the protection of personal data. " +
			"No Party shall require a covered person to use or locate computing facilities in the territory of that Party as a condition for conducting business in that territory. " +
			"Each Party shall maintain a legal framework governing electronic transactions consistent with the principles of the UNCITRAL Model Law on Electronic Commerce.",
	},
	{
		Code:    "ALIANZA-PACIFICO",
		Name:    "Pacific Alliance Framework Agreement",
		Parties: []string{"CL", "CO", "MX", "PE"},
		Status:  "in_force",
		Signed:  "2012-06-06",
		InForce: "2015-07-20",
		Topics:  []string{"goods", "services", "digital_trade", "movement_of_persons"},
		Summary: "Deep integration initiative among Chile, Colombia, Mexico, and Peru: tariff elimination, accumulation of origin, a joint stock exchange (MILA), and an additional protocol with an electronic commerce chapter.",
		FullText: "The Parties establish the Pacific Alliance as an area of deep integration seeking the free movement of goods, services, capital and persons. " +
			"Under the Additional Protocol, each Party shall accord to digital products transmitted electronically treatment no less favourable than that accorded to like digital products of any other Party. " +
			"The Parties recognise the importance of the protection of personal information of electronic commerce users and shall adopt or maintain a legal framework to that effect, taking into account international standards.",
	},
	{
		Code:    "DEPA",
		Name:    "Digital Economy Partnership Agreement",
		Parties: []string{"CL", "NZ", "SG"},
		Status:  "in_force",
		Signed:  "2020-06-12",
		InForce: "2021-01-07",
		Topics:  []string{"digital_trade", "data_flows", "ai_governance", "digital_identities"},
		Summary: "Modular digital-only trade agreement between Chile, New Zealand, and Singapore covering data flows, digital identities, AI governance cooperation, and paperless trading.",
		FullText: "The Parties affirm their commitment to the free flow of data across borders for the conduct of business, while preserving each Party's right to regulate for legitimate public policy objectives. " +
			"No Party shall require the transfer of, or access to, source code of software owned by a person of another Party as a condition for the import, distribution, sale or use of such software. " +
			"The Parties shall endeavour to promote the adoption of ethical and governance frameworks that support the trusted, safe and responsible use of artificial intelligence technologies. " +
			"The Parties recognise that digital identities that are mutually recognised can promote regional and global connectivity.",
	},
	{
		Code:    "MERCOSUR-EU",
		Name:    "MERCOSUR–European Union Association Agreement",
		Parties: []string{"AR", "BR", "PY", "UY", "EU"},
		Status:  "signed",
		Signed:  "2024-12-06",
		Topics:  []string{"goods", "services", "sustainability", "digital_trade"},
		Summary: "Bi-regional association agreement concluded in principle between MERCOSUR and the EU; signed at the 2024 summit, pending ratification. Eliminates tariffs on the bulk of bilateral trade and includes a trade-and-sustainable-development chapter.",
		FullText: "The Agreement establishes a free trade area consistent with Article XXIV of the GATT 1994 and Article V of the GATS. " +
			"The Parties shall progressively liberalise trade in goods over a transitional period, with the European Union eliminating duties on 92 percent of imports from MERCOSUR. " +
			"The chapter on digital trade prohibits customs duties on electronic transmissions and ensures the validity of electronic contracts.",
	},
	{
		Code:    "CL-EU",
		Name:    "Chile–European Union Advanced Framework Agreement",
		Parties: []string{"CL", "EU"},
		Status:  "in_force",
		Signed:  "2023-12-13",
		InForce: "2025-02-01",
		Topics:  []string{"goods", "services", "digital_trade", "raw_materials"},
		Summary: "Modernisation of the 2002 Chile–EU Association Agreement. Adds chapters on digital trade, energy and raw materials, and sustainable food systems.",
		FullText: "The Parties, recognising that digital trade expands trade opportunities, shall not prohibit or restrict the cross-border flow of data where this activity is for the conduct of the business of a covered person. " +
			"Neither Party shall adopt or maintain measures requiring data localisation beyond what is necessary to achieve a legitimate public policy objective. " +
			"The Parties shall cooperate on regulatory matters with regard to digital trade, including the recognition of electronic trust services.",
	},
	{
		Code:    "MX-EU",
		Name:    "Mexico–European Union Global Agreement (modernised)",
		Parties: []string{"MX", "EU"},
		Status:  "signed",
		Signed:  "2025-01-17",
		Topics:  []string{"goods", "services", "investment", "digital_trade"},
		Summary: "Modernised EU–Mexico agreement concluded in January 2025, replacing the 2000 Global Agreement; covers digital trade, investment protection, and agricultural market access. Pending ratification.",
		FullText: "The Parties shall ensure that cross-border data flows are not restricted between the Parties where the movement of data is necessary for the conduct of covered business. " +
			"Electronic contracts and electronic signatures shall not be denied legal effect solely on the grounds that they are in electronic form.",
	},
	{
		Code:    "USMCA",
		Name:    "United States–Mexico–Canada Agreement",
		Parties: []string{"US", "MX", "CA"},
		Status:  "in_force",
		Signed:  "2018-11-30",
		InForce: "2020-07-01",
		Topics:  []string{"goods", "services", "digital_trade", "labor"},
		Summary: "Successor to NAFTA. Chapter 19 on digital trade prohibits data-localisation requirements and customs duties on digital products, and protects cross-border transfer of information.",
		FullText: "No Party shall prohibit or restrict the cross-border transfer of information, including personal information, by electronic means if this activity is for the conduct of the business of a covered person. " +
			"No Party shall require a covered person to use or locate computing facilities in that Party's territory as a condition for conducting business in that territory. " +
			"No Party shall accord less favourable treatment to digital products created, produced, published, contracted for, commissioned or first made available on commercial terms in the territory of another Party.",
	},
	{
		Code:    "CPTPP",
		Name:    "Comprehensive and Progressive Agreement for Trans-Pacific Partnership",
		Parties: []string{"CL", "MX", "PE", "SG", "NZ"},
		Status:  "in_force",
		Signed:  "2018-03-08",
		InForce: "2018-12-30",
		Topics:  []string{"goods", "services", "digital_trade", "state_owned_enterprises"},
		Summary: "Eleven-member trans-Pacific agreement (LATAM members: Chile, Mexico, Peru). Its electronic commerce chapter binds cross-border data flows and bans forced localisation, with public-policy exceptions.",
		FullText: "Each Party shall allow the cross-border transfer of information by electronic means, including personal information, when this activity is for the conduct of the business of a covered person. " +
			"No Party shall require a covered person to use or locate computing facilities in that Party's territory as a condition for conducting business in that territory. " +
			"Nothing in this Chapter shall prevent a Party from adopting or maintaining measures to achieve a legitimate public policy objective, provided that the measure is not applied in a manner which would constitute arbitrary or unjustifiable discrimination.",
	},
	{
		Code:    "ACE-35",
		Name:    "Economic Complementation Agreement No. 35 (Chile–MERCOSUR)",
		Parties: []string{"CL", "AR", "BR", "PY", "UY"},
		Status:  "in_force",
		Signed:  "1996-06-25",
		InForce: "1996-10-01",
		Topics:  []string{"goods", "customs_procedures"},
		Summary: "ALADI economic complementation agreement associating Chile with MERCOSUR: tariff elimination programme and physical integration commitments.",
		FullText: "The present Agreement aims to establish the legal and institutional framework for cooperation and economic and physical integration between Chile and MERCOSUR, " +
			"providing for the formation of a free trade area within a period of ten years through a programme of progressive and automatic tariff reduction.",
	},
	{
		Code:    "CL-UY-FTA",
		Name:    "Chile–Uruguay Free Trade Agreement",
		Parties: []string{"CL", "UY"},
		Status:  "in_force",
		Signed:  "2016-10-04",
		InForce: "2018-12-13",
		Topics:  []string{"goods", "services", "digital_trade", "gender"},
		Summary: "Bilateral FTA with one of the region's earliest dedicated electronic commerce chapters and the first trade-and-gender chapter in the Americas.",
		FullText: "The Parties shall allow the cross-border transfer of information by electronic means where this activity is for the conduct of the business of a covered person. " +
			"The Parties recognise the economic and social importance of the protection of personal information online and shall exchange information on their respective regimes.",
	},
}

// Transfer rules are stored as authored — some pairs only in one
// direction. The (AR, EU) and (UY, EU) adequacy decisions are real EU
// Commission decisions.
var seedTransferRules = []TransferRule{
	{
		Source:         "AR",
		Dest:           "EU",
		AdequacyStatus: "adequacy",
		Mechanisms:     []string{"adequacy_decision"},
		Framework:      "EU Commission Decision 2003/490/EC",
		Notes:          "Argentina was the first Latin American country recognised as providing adequate protection; reconfirmed in the 2024 adequacy review.",
	},
	{
		Source:         "UY",
		Dest:           "EU",
		AdequacyStatus: "adequacy",
		Mechanisms:     []string{"adequacy_decision"},
		Framework:      "EU Commission Implementing Decision 2012/484/EU",
		Notes:          "Uruguay holds an EU adequacy decision based on Law 18.331 on personal data protection.",
	},
	{
		Source:         "BR",
		Dest:           "EU",
		AdequacyStatus: "none",
		Mechanisms:     []string{"standard_contractual_clauses", "binding_corporate_rules"},
		Framework:      "LGPD Art. 33 / GDPR Chapter V",
		Notes:          "No adequacy decision in either direction; transfers rely on appropriate safeguards under both regimes.",
	},
	{
		Source:         "MX",
		Dest:           "EU",
		AdequacyStatus: "none",
		Mechanisms:     []string{"standard_contractual_clauses"},
		Framework:      "LFPDPPP / GDPR Chapter V",
	},
	{
		// Stored EU-first: the only row for the CL/EU pair.
		Source:         "EU",
		Dest:           "CL",
		AdequacyStatus: "under_review",
		Mechanisms:     []string{"standard_contractual_clauses"},
		Framework:      "Law 21.719 / GDPR Chapter V",
		Notes:          "Chile's 2024 data protection law (Law 21.719) created an enforcement agency; an adequacy assessment is pending its entry into force.",
	},
	{
		Source:         "AR",
		Dest:           "UY",
		AdequacyStatus: "adequacy",
		Mechanisms:     []string{"national_adequacy_listing"},
		Framework:      "AAIP Resolution 34/2019",
		Notes:          "Argentina lists Uruguay among jurisdictions with adequate protection; Uruguay reciprocates for EU-adequate countries.",
	},
	{
		Source:         "MX",
		Dest:           "US",
		AdequacyStatus: "none",
		Mechanisms:     []string{"contractual_clauses", "consent"},
		Framework:      "USMCA Art. 19.11",
		Notes:          "USMCA binds both parties not to restrict cross-border transfer of information for covered business.",
	},
	{
		Source:         "BR",
		Dest:           "AR",
		AdequacyStatus: "none",
		Mechanisms:     []string{"contractual_clauses"},
		Framework:      "LGPD Art. 33 / Law 25.326",
		Notes:          "ANPD has not issued an adequacy finding for Argentina; Argentina does not list Brazil.",
	},
}

var seedRecognitions = []Recognition{
	{
		CountryA:      "BR",
		CountryB:      "AR",
		Domain:        "customs_procedures",
		Description:   "Mutual recognition of Authorized Economic Operator (AEO) programmes: operators certified by either customs administration receive reciprocal facilitation benefits.",
		AgreementCode: "MERCOSUR",
	},
	{
		CountryA:      "BR",
		CountryB:      "AR",
		Domain:        "conformity_assessment",
		Description:   "Reciprocal acceptance of conformity assessment results for regulated industrial products under MERCOSUR technical regulations.",
		AgreementCode: "MERCOSUR",
	},
	{
		CountryA:      "AR",
		CountryB:      "BR",
		Domain:        "professional_qualifications",
		Description:   "Recognition of university degrees for academic purposes under the MERCOSUR Educational Integration Protocol.",
		AgreementCode: "MERCOSUR",
	},
	{
		CountryA:      "CL",
		CountryB:      "PE",
		Domain:        "customs_procedures",
		Description:   "AEO mutual recognition arrangement between Chile's SNA and Peru's SUNAT within the Pacific Alliance customs cooperation framework.",
		AgreementCode: "ALIANZA-PACIFICO",
	},
	{
		CountryA:      "MX",
		CountryB:      "CL",
		Domain:        "sanitary_measures",
		Description:   "Equivalence of sanitary and phytosanitary certification for selected agricultural exports.",
		AgreementCode: "ALIANZA-PACIFICO",
	},
	{
		CountryA:      "CO",
		CountryB:      "PE",
		Domain:        "digital_signatures",
		Description:   "Cross-border recognition of qualified electronic signature certificates issued by accredited providers of either party.",
		AgreementCode: "ALIANZA-PACIFICO",
	},
	{
		CountryA:    "CL",
		CountryB:    "NZ",
		Domain:      "digital_identities",
		Description: "Cooperation toward technical interoperability of national digital identity schemes under DEPA module 7.",
		// Working arrangement, not a standalone instrument — no agreement reference.
	},
	{
		CountryA:      "UY",
		CountryB:      "CL",
		Domain:        "customs_procedures",
		Description:   "Mutual recognition of AEO programmes under the bilateral FTA's trade facilitation chapter.",
		AgreementCode: "CL-UY-FTA",
	},
}

var seedObligations = []DigitalObligation{
	{
		AgreementCode: "DEPA",
		Category:      "data_flows",
		Obligation:    "Parties shall allow the cross-border transfer of information by electronic means, including personal information, for the conduct of covered business.",
		Countries:     []string{"CL", "NZ", "SG"},
		Binding:       true,
	},
	{
		AgreementCode: "DEPA",
		Category:      "data_localization",
		Obligation:    "No party shall require the use or location of computing facilities in its territory as a condition for conducting business.",
		Countries:     []string{"CL", "NZ", "SG"},
		Binding:       true,
	},
	{
		AgreementCode: "DEPA",
		Category:      "source_code",
		Obligation:    "No party shall require transfer of or access to source code of software owned by a person of another party as a condition of import, distribution, sale, or use.",
		Countries:     []string{"CL", "NZ", "SG"},
		Binding:       true,
	},
	{
		AgreementCode: "DEPA",
		Category:      "ai_governance",
		Obligation:    "Parties shall endeavour to promote ethical and governance frameworks for the trusted, safe, and responsible use of AI technologies.",
		Countries:     []string{"CL", "NZ", "SG"},
		Binding:       false,
	},
	{
		AgreementCode: "ALIANZA-PACIFICO",
		Category:      "data_flows",
		Obligation:    "Each party shall allow the cross-border transfer of information by electronic means for the conduct of the business of a covered person.",
		Countries:     []string{"CL", "CO", "MX", "PE"},
		Binding:       true,
	},
	{
		AgreementCode: "ALIANZA-PACIFICO",
		Category:      "online_consumer_protection",
		Obligation:    "Each party shall adopt or maintain consumer protection laws proscribing fraudulent and deceptive commercial activities online.",
		Countries:     []string{"CL", "CO", "MX", "PE"},
		Binding:       true,
	},
	{
		AgreementCode: "ALIANZA-PACIFICO",
		Category:      "personal_data",
		Obligation:    "Each party shall adopt or maintain a legal framework protecting the personal information of electronic commerce users, taking into account international standards.",
		Countries:     []string{"CL", "CO", "MX", "PE"},
		Binding:       true,
	},
	{
		AgreementCode: "MERCOSUR-ECOMMERCE",
		Category:      "data_flows",
		Obligation:    "Parties shall allow the cross-border transfer of information by electronic means, subject to each party's personal data protection framework.",
		Countries:     []string{"AR", "BR", "PY", "UY"},
		Binding:       true,
	},
	{
		AgreementCode: "MERCOSUR-ECOMMERCE",
		Category:      "data_localization",
		Obligation:    "No party shall require a covered person to use or locate computing facilities in its territory as a condition for conducting business there.",
		Countries:     []string{"AR", "BR", "PY", "UY"},
		Binding:       true,
	},
	{
		AgreementCode: "MERCOSUR-ECOMMERCE",
		Category:      "electronic_signatures",
		Obligation:    "Parties shall not deny legal validity to a signature solely on the basis that it is in electronic form.",
		Countries:     []string{"AR", "BR", "PY", "UY"},
		Binding:       true,
	},
	{
		AgreementCode: "USMCA",
		Category:      "data_flows",
		Obligation:    "No party shall prohibit or restrict the cross-border transfer of information, including personal information, by electronic means for covered business.",
		Countries:     []string{"US", "MX", "CA"},
		Binding:       true,
	},
	{
		AgreementCode: "USMCA",
		Category:      "data_localization",
		Obligation:    "No party shall require a covered person to use or locate computing facilities in that party's territory as a condition for conducting business.",
		Countries:     []string{"US", "MX", "CA"},
		Binding:       true,
	},
	{
		AgreementCode: "CL-UY-FTA",
		Category:      "data_flows",
		Obligation:    "Parties shall allow the cross-border transfer of information by electronic means for the conduct of the business of a covered person.",
		Countries:     []string{"CL", "UY"},
		Binding:       true,
	},
	{
		AgreementCode: "CPTPP",
		Category:      "data_flows",
		Obligation:    "Each party shall allow the cross-border transfer of information by electronic means, including personal information, for covered business, subject to legitimate public policy exceptions.",
		Countries:     []string{"CL", "MX", "PE", "SG", "NZ"},
		Binding:       true,
	},
	{
		AgreementCode: "CPTPP",
		Category:      "data_localization",
		Obligation:    "No party shall require the use or location of computing facilities in its territory as a condition for conducting business, subject to legitimate public policy exceptions.",
		Countries:     []string{"CL", "MX", "PE", "SG", "NZ"},
		Binding:       true,
	},
}
