package enhance

import "strings"

// Rule appends Clause unless the input already mentions one of Keywords.
// A rule with no keywords always applies.
type Rule struct {
	Name     string
	Keywords []string
	Clause   string
}

// Applies reports whether the clause should be appended for the lowercased input.
func (r Rule) Applies(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return false
		}
	}
	return true
}

// Pipeline is an ordered list of rules.
type Pipeline []Rule

// Apply appends every applicable clause to raw, in order.
// Keyword checks read the original input only, never the accumulated output.
func (p Pipeline) Apply(raw string) string {
	lowered := snapshot(raw)

	var b strings.Builder
	b.WriteString(raw)
	for _, r := range p {
		if r.Applies(lowered) {
			b.WriteString(r.Clause)
		}
	}
	return b.String()
}

// Steps returns the names of the rules that fire for raw.
func (p Pipeline) Steps(raw string) []string {
	lowered := snapshot(raw)

	var names []string
	for _, r := range p {
		if r.Applies(lowered) {
			names = append(names, r.Name)
		}
	}
	return names
}

// ImageRules is the clause pipeline for image prompts.
var ImageRules = Pipeline{
	{Name: "viewpoint", Keywords: []string{"angle", "view"}, Clause: ", front view, eye level"},
	{Name: "lighting", Keywords: []string{"light", "illuminat"}, Clause: ", natural lighting, soft shadows"},
	{Name: "mood", Keywords: []string{"mood", "atmosphere"}, Clause: ", serene atmosphere"},
	{Name: "style", Keywords: []string{"style"}, Clause: ", photorealistic style"},
	{Name: "resolution", Clause: ", 8K resolution, ultra HD, professional photography"},
	{Name: "composition", Keywords: []string{"composition"}, Clause: ", rule of thirds composition, perfect framing"},
	{Name: "detail", Clause: ", intricate details, sharp focus, crystal clear"},
	{Name: "finish", Clause: ", professional color grading, masterpiece quality"},
}

// VideoRules is the clause pipeline for video prompts.
var VideoRules = Pipeline{
	{Name: "camera", Keywords: []string{"camera", "shot"}, Clause: ", smooth camera movement, dynamic shots"},
	{Name: "lighting", Keywords: []string{"light"}, Clause: ", cinematic lighting, dramatic shadows"},
	{Name: "mood", Keywords: []string{"mood", "atmosphere"}, Clause: ", immersive atmosphere"},
	{Name: "audio", Keywords: []string{"sound", "audio"}, Clause: ", professional sound design, ambient audio"},
	{Name: "format", Clause: ", 8K resolution, 24fps, HDR"},
	{Name: "cinematography", Keywords: []string{"cinematic"}, Clause: ", cinematic composition, depth of field"},
	{Name: "post", Clause: ", professional color grading, seamless transitions"},
	{Name: "production", Clause: ", high production value, industry standard quality"},
}
