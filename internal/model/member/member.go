package member

// Record 是一条成员记录。字段集合由外部 JSON 文件决定，这里不做约束，
// 只原样透传给已登录的调用方。
type Record map[string]any

// publicFields 是未登录访客可见的字段。
var publicFields = []string{"name", "className", "major", "gender"}

// Public returns the projection of the record exposed without authentication.
// Fields absent from the source record stay absent in the projection.
func (r Record) Public() Record {
	out := make(Record, len(publicFields))
	for _, key := range publicFields {
		if v, ok := r[key]; ok {
			out[key] = v
		}
	}
	return out
}

// PublicAll projects a full roster down to its public view.
func PublicAll(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		out = append(out, r.Public())
	}
	return out
}
