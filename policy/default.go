package policy

import "github.com/tsawler/reportkit/rank"

// dateRangePattern matches lines such as "01 יולי 2025 עד 31 יולי 2025".
const dateRangePattern = `\b\d{1,2}\s+\S+\s+\d{4}\s+עד\s+\d{1,2}\s+\S+\s+\d{4}\b`

// Default returns the policy for the Hebrew monthly SEO report.
func Default() Policy {
	rules := rank.DefaultRules()
	return Policy{
		Variant: DetailsFirst,
		Markers: Markers{
			MonthlyComparison: exact("השוואה חודשית"),
			CollapsibleStarts: []Matcher{
				exact("ביטויים המובילים לאתר מעמוד ראשון בגוגל"),
				exact("ביטויים המובילים לאתר מעמוד ראשון ושני בגוגל"),
			},
			CollapsibleTrailing: exact("מילים מובילות"),
			DateRange:           Matcher{Kind: Regex, Value: dateRangePattern},
			Links:               exact("צפייה בקישורים"),
			Title:               prefix(`דו"ח תקופתי`),
			MonthlyReport: []Matcher{
				prefix("פעולות שוטפות"),
				prefix("בעקבות פעולות הקידום:"),
			},
			TotalTraffic:    exact("תנועה כוללת"),
			Keywords:        exact("ביטויים בקידום"),
			Reached:         contains("הגענו למקום מעולה"),
			Kept:            contains("שמרנו על מקום מעולה"),
			Progressed:      contains("התקדמנו במיקומי מילות"),
			Group:           contains("בעקבות פעולות הקידום"),
			DetailsTable:    contains("פירוט"),
			DetailsHeadline: exact("בחודש האחרון בוצעו הפעולות הבאות:"),
			LocalSearches:   exact("חיפושים מקומיים"),
			FewSearches:     exact("מעט חיפושים"),
		},
		Scaffold: Scaffold{
			IntroTitle:    "פעולות שוטפות",
			IntroSubtitle: ":מידי חודש מבוצעות פעולות בדיקה ובקרה הכוללות",
			Bullets: []string{
				"בדיקות כפילות תוכן •",
				"בדיקות תקינות קוד •",
				"בדיקות מהירות וזמינות שרת •",
				"בדיקות תקינות אופטימיזציה כולל TITLE, H1, H2, META •",
				"בדיקות תקינות לינקים נכנסים •",
				"בדיקת מיקומי ביטויי המפתח •",
				"בדיקת התנהגות גולשים באתר הנייח ובמובייל •",
				", A1, זפו, console,  לצורך בקרה על תקינות האתר והתאמת אופטימיזציה לגוגל, שימוש בכלי בקרה אנליטיקס, פרוג",
				".וכלי עבודה נוספים ייעודיים SEOQUAKE , מג'סטיק, HOTJAR,",
			},
			BulletSize:  22,
			Group:       "בעקבות פעולות הקידום:",
			Reached:     "הגענו למקום מעולה (עמוד 1 שורה 1)",
			Kept:        "שמרנו על מקום מעולה (עמוד 1 שורה 1)",
			Progressed:  "התקדמנו במיקומי מילות המפתח הבאות:",
			BorderColor: "ffffff",
		},
		Header: Header{
			Size:         52,
			Color:        "17365D",
			BorderColor:  "000000",
			SpacingAfter: 200,
		},
		Cells: Cells{
			Font:          "Arial",
			Size:          24,
			LowVolumeText: "10",
			LowVolumeSize: 20,
		},
		Details: Details{
			Headline:    "בחודש האחרון בוצעו הפעולות הבאות:",
			Header:      "פירוט",
			DefaultText: "אין נתונים זמינים",
			BorderColor: "D3D3D3",
			HeaderFill:  "EEECE1",
		},
		Image: Image{MaxWidthPx: 400},
		Ranking: Ranking{
			Improvement:       rules.Improvement,
			FromLabel:         rules.FromLabel,
			MinRankingColumns: rules.MinRankingColumns,
			PageOneMax:        rules.PageOneMax,
			Labels:            rules.Labels,
		},
	}
}
