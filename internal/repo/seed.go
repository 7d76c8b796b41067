package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// SeedCounts reports how many rows each seeding pass inserted. Rows that
// already existed are not counted, so rerunning reports all zeros.
type SeedCounts struct {
	Lawyers    int
	Cases      int
	Documents  int
	Statutes   int
	Precedents int
}

// SeedSampleData loads a small demonstration dataset: five lawyers across
// distinct practice areas, their active and closed matters with attached
// documents, and a starter statute and precedent library. Every row is keyed
// by its natural unique column (bar number, case number, document title,
// statute code, citation), so the function is safe to run repeatedly.
func SeedSampleData(ctx context.Context, db *gorm.DB) (SeedCounts, error) {
	var counts SeedCounts

	lawyerIDs := make(map[string]int64)
	for _, l := range sampleLawyers() {
		res := db.WithContext(ctx).Where("bar_number = ?", l.BarNumber).FirstOrCreate(&l)
		if res.Error != nil {
			return counts, res.Error
		}
		counts.Lawyers += int(res.RowsAffected)
		lawyerIDs[l.BarNumber] = l.ID
	}

	caseIDs := make(map[string]int64)
	for _, c := range sampleCases(lawyerIDs) {
		res := db.WithContext(ctx).Where("case_number = ?", c.CaseNumber).FirstOrCreate(&c)
		if res.Error != nil {
			return counts, res.Error
		}
		counts.Cases += int(res.RowsAffected)
		caseIDs[c.CaseNumber] = c.ID
	}

	for _, d := range sampleDocuments(lawyerIDs, caseIDs) {
		res := db.WithContext(ctx).Where("title = ?", d.Title).FirstOrCreate(&d)
		if res.Error != nil {
			return counts, res.Error
		}
		counts.Documents += int(res.RowsAffected)
	}

	for _, s := range sampleStatutes() {
		res := db.WithContext(ctx).Where("statute_code = ?", s.StatuteCode).FirstOrCreate(&s)
		if res.Error != nil {
			return counts, res.Error
		}
		counts.Statutes += int(res.RowsAffected)
	}

	for _, p := range samplePrecedents() {
		res := db.WithContext(ctx).Where("citation = ?", p.Citation).FirstOrCreate(&p)
		if res.Error != nil {
			return counts, res.Error
		}
		counts.Precedents += int(res.RowsAffected)
	}

	return counts, nil
}

func sampleLawyers() []domain.Lawyer {
	return []domain.Lawyer{
		{
			Name:            "Sarah Mitchell",
			BarNumber:       "CA234567",
			Firm:            "Mitchell & Associates LLP",
			PracticeAreas:   "Corporate Law,Intellectual Property,Contract Law",
			Jurisdiction:    "Federal",
			YearsExperience: 15,
			Specializations: "Mergers & Acquisitions, Patent Litigation, Technology Transactions",
			Email:           "sarah.mitchell@mitchelllaw.com",
			Phone:           "5551234567",
		},
		{
			Name:            "Marcus Johnson",
			BarNumber:       "NY345678",
			Firm:            "Johnson Legal Group",
			PracticeAreas:   "Criminal Law,Civil Litigation,Personal Injury",
			Jurisdiction:    "State",
			YearsExperience: 22,
			Specializations: "White Collar Defense, Class Actions, Medical Malpractice",
			Email:           "mjohnson@johnsonlegal.com",
			Phone:           "5552345678",
		},
		{
			Name:            "Emily Chen",
			BarNumber:       "TX456789",
			Firm:            "Chen & Partners",
			PracticeAreas:   "Employment Law,Immigration Law,Family Law",
			Jurisdiction:    "State",
			YearsExperience: 10,
			Specializations: "Employment Discrimination, Visa Applications, Custody Disputes",
			Email:           "emily.chen@chenpartners.com",
			Phone:           "5553456789",
		},
		{
			Name:            "Robert Davis",
			BarNumber:       "FL567890",
			Firm:            "Davis Environmental Law",
			PracticeAreas:   "Environmental Law,Real Estate,Regulatory Compliance",
			Jurisdiction:    "Federal",
			YearsExperience: 18,
			Specializations: "EPA Regulations, Land Use, Clean Water Act",
			Email:           "rdavis@davisenviro.com",
			Phone:           "5554567890",
		},
		{
			Name:            "Amanda Rodriguez",
			BarNumber:       "IL678901",
			Firm:            "Rodriguez Tax & Business Law",
			PracticeAreas:   "Tax Law,Corporate Law,Securities",
			Jurisdiction:    "Federal",
			YearsExperience: 12,
			Specializations: "Tax Planning, SEC Compliance, Corporate Governance",
			Email:           "arodriguez@rtaxlaw.com",
			Phone:           "5555678901",
		},
	}
}

func sampleCases(lawyerIDs map[string]int64) []domain.LegalCase {
	return []domain.LegalCase{
		{
			CaseNumber:    "CV-2024-001234",
			Title:         "TechCorp Inc. v. Innovation Systems LLC",
			CaseType:      "civil",
			PracticeArea:  "Intellectual Property",
			Jurisdiction:  "Federal",
			Court:         "United States District Court, Northern District of California",
			FilingDate:    daysAgo(180),
			Status:        "active",
			LawyerID:      lawyerIDs["CA234567"],
			ClientName:    "TechCorp Inc.",
			OpposingParty: "Innovation Systems LLC",
			CaseSummary:   "Patent infringement suit alleging the defendant copied proprietary machine learning technology without authorization.",
			KeyIssues:     "Patent validity, infringement analysis, willfulness, damages calculation",
		},
		{
			CaseNumber:    "CR-2024-002345",
			Title:         "United States v. William Harper",
			CaseType:      "criminal",
			PracticeArea:  "Criminal Law",
			Jurisdiction:  "Federal",
			Court:         "United States District Court, Southern District of New York",
			FilingDate:    daysAgo(90),
			Status:        "active",
			LawyerID:      lawyerIDs["NY345678"],
			ClientName:    "William Harper",
			OpposingParty: "United States Government",
			CaseSummary:   "White collar defense against securities fraud and insider trading charges based on alleged misstatements to investors.",
			KeyIssues:     "Scienter, materiality, loss causation, sentencing guidelines",
		},
		{
			CaseNumber:    "CV-2024-003456",
			Title:         "Martinez v. Global Manufacturing Corp.",
			CaseType:      "civil",
			PracticeArea:  "Employment Law",
			Jurisdiction:  "State",
			Court:         "Superior Court of Texas, Harris County",
			FilingDate:    daysAgo(120),
			Status:        "active",
			LawyerID:      lawyerIDs["TX456789"],
			ClientName:    "Maria Martinez",
			OpposingParty: "Global Manufacturing Corp.",
			CaseSummary:   "Employment discrimination claim alleging gender-based pay disparity and a hostile work environment; plaintiff seeks back pay and injunctive relief.",
			KeyIssues:     "Title VII violations, equal pay act, hostile work environment, punitive damages",
		},
		{
			CaseNumber:    "CV-2024-004567",
			Title:         "Green Earth Alliance v. State Environmental Agency",
			CaseType:      "administrative",
			PracticeArea:  "Environmental Law",
			Jurisdiction:  "Federal",
			Court:         "United States Court of Appeals, Eleventh Circuit",
			FilingDate:    daysAgo(210),
			Status:        "active",
			LawyerID:      lawyerIDs["FL567890"],
			ClientName:    "Green Earth Alliance",
			OpposingParty: "Florida Department of Environmental Protection",
			CaseSummary:   "Challenge to an industrial wastewater discharge permit as a violation of Clean Water Act standards.",
			KeyIssues:     "Administrative Procedure Act, Clean Water Act compliance, standing, ripeness",
		},
		{
			CaseNumber:    "CV-2024-005678",
			Title:         "DataSystems Inc. Merger Acquisition",
			CaseType:      "civil",
			PracticeArea:  "Corporate Law",
			Jurisdiction:  "Federal",
			Court:         "Delaware Court of Chancery",
			FilingDate:    daysAgo(60),
			Status:        "active",
			LawyerID:      lawyerIDs["IL678901"],
			ClientName:    "DataSystems Inc.",
			OpposingParty: "N/A - Transaction Matter",
			CaseSummary:   "USD 500M merger transaction with cross-border tax structuring and SEC filing requirements.",
			KeyIssues:     "M&A due diligence, securities regulations, tax structuring, antitrust clearance",
		},
		{
			CaseNumber:    "CV-2023-006789",
			Title:         "Johnson v. MediCare Systems",
			CaseType:      "civil",
			PracticeArea:  "Personal Injury",
			Jurisdiction:  "State",
			Court:         "New York Supreme Court, New York County",
			FilingDate:    daysAgo(365),
			Status:        "settled",
			LawyerID:      lawyerIDs["NY345678"],
			ClientName:    "Robert Johnson",
			OpposingParty: "MediCare Systems",
			CaseSummary:   "Medical malpractice claim for permanent injury caused by a surgical error; resolved by confidential settlement.",
			KeyIssues:     "Medical standard of care, causation, damages",
			Outcome:       "settled",
		},
		{
			CaseNumber:    "CV-2023-007890",
			Title:         "Smith Family Trust v. IRS",
			CaseType:      "civil",
			PracticeArea:  "Tax Law",
			Jurisdiction:  "Federal",
			Court:         "United States Tax Court",
			FilingDate:    daysAgo(400),
			Status:        "closed",
			LawyerID:      lawyerIDs["IL678901"],
			ClientName:    "Smith Family Trust",
			OpposingParty: "Internal Revenue Service",
			CaseSummary:   "Estate valuation and gift tax dispute decided in the trust's favor.",
			KeyIssues:     "Estate tax valuation, gift tax exemptions, trust administration",
			Outcome:       "won",
		},
	}
}

func sampleDocuments(lawyerIDs, caseIDs map[string]int64) []domain.LegalDocument {
	return []domain.LegalDocument{
		{
			DocumentType:    "contract",
			Title:           "Software License Agreement - TechCorp",
			CaseID:          idRef(caseIDs, "CV-2024-001234"),
			LawyerID:        lawyerIDs["CA234567"],
			DocumentContent: "Enterprise software license granting TechCorp a perpetual, non-exclusive license with source escrow provisions.",
			Jurisdiction:    "Federal",
			PracticeArea:    "Intellectual Property",
			Status:          "finalized",
		},
		{
			DocumentType:    "motion",
			Title:           "Motion for Summary Judgment - Harper",
			CaseID:          idRef(caseIDs, "CR-2024-002345"),
			LawyerID:        lawyerIDs["NY345678"],
			DocumentContent: "Motion arguing the government cannot establish scienter on the undisputed trading records.",
			Jurisdiction:    "Federal",
			PracticeArea:    "Criminal Law",
			Status:          "filed",
		},
		{
			DocumentType:    "brief",
			Title:           "Memorandum in Support - Martinez",
			CaseID:          idRef(caseIDs, "CV-2024-003456"),
			LawyerID:        lawyerIDs["TX456789"],
			DocumentContent: "Brief supporting the discrimination claims with comparator pay data and supervisor communications.",
			Jurisdiction:    "State",
			PracticeArea:    "Employment Law",
			Status:          "filed",
		},
		{
			DocumentType:    "contract",
			Title:           "Merger Agreement - DataSystems Transaction",
			CaseID:          idRef(caseIDs, "CV-2024-005678"),
			LawyerID:        lawyerIDs["IL678901"],
			DocumentContent: "Agreement and plan of merger with customary representations, warranties and a regulatory efforts covenant.",
			Jurisdiction:    "Federal",
			PracticeArea:    "Corporate Law",
			Status:          "draft",
		},
		{
			DocumentType:    "settlement_agreement",
			Title:           "Confidential Settlement Agreement - Johnson v. MediCare",
			CaseID:          idRef(caseIDs, "CV-2023-006789"),
			LawyerID:        lawyerIDs["NY345678"],
			DocumentContent: "Fully executed settlement releasing all claims in exchange for a confidential payment.",
			Jurisdiction:    "State",
			PracticeArea:    "Personal Injury",
			Status:          "executed",
		},
	}
}

func sampleStatutes() []domain.Statute {
	return []domain.Statute{
		{
			StatuteCode:   "35 USC 101",
			Title:         "Patentable Subject Matter",
			Jurisdiction:  "Federal",
			Category:      "Intellectual Property",
			Summary:       "Defines which inventions are eligible for patent protection in the United States.",
			FullText:      "Whoever invents or discovers any new and useful process, machine, manufacture, or composition of matter, or any new and useful improvement thereof, may obtain a patent therefor, subject to the conditions and requirements of this title.",
			EffectiveDate: date(1952, time.July, 19),
			Status:        "active",
			CitationCount: 15234,
		},
		{
			StatuteCode:   "42 USC 2000e-2",
			Title:         "Title VII - Unlawful Employment Practices",
			Jurisdiction:  "Federal",
			Category:      "Employment Law",
			Summary:       "Prohibits employment discrimination based on protected characteristics.",
			FullText:      "It shall be an unlawful employment practice for an employer to fail or refuse to hire or to discharge any individual, or otherwise to discriminate against any individual with respect to his compensation, terms, conditions, or privileges of employment, because of such individual's race, color, religion, sex, or national origin.",
			EffectiveDate: date(1964, time.July, 2),
			Status:        "active",
			CitationCount: 28567,
		},
		{
			StatuteCode:   "15 USC 78j(b)",
			Title:         "Securities Exchange Act - Manipulative and Deceptive Devices",
			Jurisdiction:  "Federal",
			Category:      "Securities Law",
			Summary:       "Prohibits securities fraud and market manipulation.",
			FullText:      "It shall be unlawful for any person, directly or indirectly, to use or employ, in connection with the purchase or sale of any security, any manipulative or deceptive device or contrivance in contravention of such rules and regulations as the Commission may prescribe.",
			EffectiveDate: date(1934, time.June, 6),
			Status:        "active",
			CitationCount: 45123,
		},
		{
			StatuteCode:   "33 USC 1311",
			Title:         "Clean Water Act - Effluent Limitations",
			Jurisdiction:  "Federal",
			Category:      "Environmental Law",
			Summary:       "Establishes the federal program regulating discharge of pollutants into U.S. waters.",
			FullText:      "Except as in compliance with this section and sections 1312, 1316, 1317, 1328, 1342, and 1344 of this title, the discharge of any pollutant by any person shall be unlawful.",
			EffectiveDate: date(1972, time.October, 18),
			Status:        "active",
			CitationCount: 12456,
		},
		{
			StatuteCode:   "26 USC 1",
			Title:         "Tax Rates for Individuals",
			Jurisdiction:  "Federal",
			Category:      "Tax Law",
			Summary:       "Establishes federal income tax rates and brackets.",
			FullText:      "There is hereby imposed on the taxable income of every individual a tax determined in accordance with the applicable rate tables of this section.",
			EffectiveDate: date(1913, time.October, 3),
			Status:        "active",
			CitationCount: 34567,
		},
	}
}

func samplePrecedents() []domain.Precedent {
	return []domain.Precedent{
		{
			CaseName:        "Alice Corp. v. CLS Bank International",
			Citation:        "573 U.S. 208 (2014)",
			Court:           "Supreme Court of the United States",
			Jurisdiction:    "Federal",
			DecisionDate:    date(2014, time.June, 19),
			PracticeArea:    "Intellectual Property",
			LegalIssue:      "Patent eligibility of computer-implemented inventions",
			Holding:         "Claims directed to abstract ideas are not patent eligible unless they contain an inventive concept sufficient to transform the abstract idea into a patent-eligible application.",
			Keywords:        "patent eligibility, abstract ideas, software patents, Section 101",
			ImportanceScore: 0.98,
			CitationCount:   8234,
		},
		{
			CaseName:        "McDonnell Douglas Corp. v. Green",
			Citation:        "411 U.S. 792 (1973)",
			Court:           "Supreme Court of the United States",
			Jurisdiction:    "Federal",
			DecisionDate:    date(1973, time.May, 14),
			PracticeArea:    "Employment Law",
			LegalIssue:      "Burden-shifting framework for employment discrimination cases",
			Holding:         "Established the three-part burden-shifting test for proving employment discrimination under Title VII.",
			Keywords:        "employment discrimination, burden shifting, Title VII, prima facie case",
			ImportanceScore: 0.99,
			CitationCount:   12456,
		},
		{
			CaseName:        "Basic Inc. v. Levinson",
			Citation:        "485 U.S. 224 (1988)",
			Court:           "Supreme Court of the United States",
			Jurisdiction:    "Federal",
			DecisionDate:    date(1988, time.March, 7),
			PracticeArea:    "Securities Law",
			LegalIssue:      "Materiality standard and fraud-on-the-market theory in securities cases",
			Holding:         "Materiality turns on whether disclosure would alter the total mix of information; market efficiency supports a presumption of reliance.",
			Keywords:        "securities fraud, materiality, fraud-on-the-market, reliance, Rule 10b-5",
			ImportanceScore: 0.97,
			CitationCount:   15678,
		},
		{
			CaseName:        "Chevron U.S.A., Inc. v. Natural Resources Defense Council",
			Citation:        "467 U.S. 837 (1984)",
			Court:           "Supreme Court of the United States",
			Jurisdiction:    "Federal",
			DecisionDate:    date(1984, time.June, 25),
			PracticeArea:    "Environmental Law",
			LegalIssue:      "Judicial deference to agency interpretation of statutes",
			Holding:         "Courts must defer to reasonable agency interpretations of ambiguous statutes under a two-step framework.",
			Keywords:        "Chevron deference, administrative law, statutory interpretation, agency discretion",
			ImportanceScore: 0.99,
			CitationCount:   23456,
		},
		{
			CaseName:        "Commissioner v. Estate of Bosch",
			Citation:        "387 U.S. 456 (1967)",
			Court:           "Supreme Court of the United States",
			Jurisdiction:    "Federal",
			DecisionDate:    date(1967, time.June, 5),
			PracticeArea:    "Tax Law",
			LegalIssue:      "Federal courts' treatment of state court decisions in federal tax cases",
			Holding:         "Federal courts give proper regard to state court decisions on state law but are not bound by them when determining federal tax consequences.",
			Keywords:        "federal tax law, state law, Erie doctrine, estate planning",
			ImportanceScore: 0.89,
			CitationCount:   5678,
		},
	}
}

func daysAgo(n int) *time.Time {
	t := time.Now().AddDate(0, 0, -n)
	return &t
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func idRef(ids map[string]int64, key string) *int64 {
	if id, ok := ids[key]; ok && id > 0 {
		return &id
	}
	return nil
}
