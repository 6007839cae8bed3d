package enrollment

import (
	"ncschooldata/pkg/contracts/domain"
)

var k8Grades = map[string]bool{
	"K": true, "01": true, "02": true, "03": true, "04": true,
	"05": true, "06": true, "07": true, "08": true,
}

var hsGrades = map[string]bool{
	"09": true, "10": true, "11": true, "12": true,
}

type bandKey struct {
	endYear    int
	flag       string
	districtID string
	campusID   string
	subgroup   string
}

type bandAgg struct {
	template domain.TidyRow
	k8       int64
	k8Seen   bool
	hs       int64
	hsSeen   bool
}

// GradeBandAggregates derives K8, HS, and K12 rollup rows from tidy rows.
// Per (entity, subgroup) group: K8 sums grades K through 08, HS sums 09
// through 12, K12 is their combination. PK and TOTAL never contribute. A
// band with no contributing rows is not emitted, and Pct stays NULL on
// every band row; it is not recomputed from the constituent percentages.
//
// Output order follows first appearance of each group in the input, K8
// then HS then K12 within a group, so repeated runs produce identical
// output.
func GradeBandAggregates(tidy []domain.TidyRow) []domain.TidyRow {
	groups := make(map[bandKey]*bandAgg)
	order := make([]bandKey, 0)

	for i := range tidy {
		r := &tidy[i]

		inK8 := k8Grades[r.GradeLevel]
		inHS := hsGrades[r.GradeLevel]
		if !inK8 && !inHS {
			continue
		}

		key := bandKey{
			endYear:    r.EndYear,
			flag:       r.AggregationFlag,
			districtID: r.DistrictID.String,
			campusID:   r.CampusID.String,
			subgroup:   r.Subgroup,
		}

		agg, ok := groups[key]
		if !ok {
			agg = &bandAgg{template: *r}
			groups[key] = agg
			order = append(order, key)
		}

		if inK8 {
			agg.k8 += r.NStudents
			agg.k8Seen = true
		} else {
			agg.hs += r.NStudents
			agg.hsSeen = true
		}
	}

	out := make([]domain.TidyRow, 0, len(order)*3)
	for _, key := range order {
		agg := groups[key]

		if agg.k8Seen {
			out = append(out, bandRow(agg.template, domain.BandK8, agg.k8))
		}
		if agg.hsSeen {
			out = append(out, bandRow(agg.template, domain.BandHS, agg.hs))
		}
		out = append(out, bandRow(agg.template, domain.BandK12, agg.k8+agg.hs))
	}
	return out
}

func bandRow(template domain.TidyRow, band string, n int64) domain.TidyRow {
	row := template
	row.GradeLevel = band
	row.NStudents = n
	row.Pct = domain.NullFloat{}
	return row
}
