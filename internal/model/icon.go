package model

// IconStyle 图标样式（outline / filled）
type IconStyle string

const (
	StyleOutline IconStyle = "outline"
	StyleFilled  IconStyle = "filled"
)

// Valid 校验样式取值
func (s IconStyle) Valid() bool {
	return s == StyleOutline || s == StyleFilled
}

// IconFiles 图标各样式对应的 CDN 相对路径
type IconFiles struct {
	Outline string `json:"outline,omitempty"`
	Filled  string `json:"filled,omitempty"`
}

// PathFor 获取指定样式的文件路径，不存在返回空串
func (f IconFiles) PathFor(style IconStyle) string {
	switch style {
	case StyleOutline:
		return f.Outline
	case StyleFilled:
		return f.Filled
	}
	return ""
}

// Icon 图标目录条目
// id 唯一且稳定（kebab-case），拉取后不再修改
type Icon struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags,omitempty"`
	Files    IconFiles `json:"files"`
}

// HasStyle 是否存在指定样式的文件
func (i Icon) HasStyle(style IconStyle) bool {
	return i.Files.PathFor(style) != ""
}

// IconIndex 图标目录（index.json 响应）
type IconIndex struct {
	Icons []Icon `json:"icons"`
}
