package models

// ResumeData is the resume/profile document stored as a single JSON file.
// It is kept schemaless on the Go side: admin updates arrive as partial
// documents and are deep-merged by key into the stored document, with
// arrays replaced wholesale rather than concatenated, so a typed struct
// would force every optional section to round-trip through pointers.
// Top-level sections include personal, summary, keyStrengths, experience,
// education, certifications and skills.
type ResumeData map[string]any

// Merge returns a new document with patch deep-merged into base. Nested
// objects merge recursively; arrays and scalars from patch replace the
// base value outright.
func (base ResumeData) Merge(patch ResumeData) ResumeData {
	out := make(ResumeData, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, pv := range patch {
		bv, ok := out[k]
		if !ok {
			out[k] = pv
			continue
		}
		pm, pIsMap := pv.(map[string]any)
		bm, bIsMap := bv.(map[string]any)
		if pIsMap && bIsMap {
			out[k] = map[string]any(ResumeData(bm).Merge(pm))
			continue
		}
		out[k] = pv
	}
	return out
}
