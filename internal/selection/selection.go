package selection

import "sync"

// Set 已选图标集合
// 会话级状态：进程重启即清空，不落盘。
// 所有操作摊还 O(1)，Count 在每次变更后与集合大小保持一致。
type Set struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewSet 创建空集合
func NewSet() *Set {
	return &Set{
		ids: make(map[string]struct{}),
	}
}

// Toggle 切换选中状态
func (s *Set) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// Select 选中
func (s *Set) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = struct{}{}
}

// Deselect 取消选中（不存在时为空操作）
func (s *Set) Deselect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}

// SelectAll 用给定 id 列表整体替换当前选择
func (s *Set) SelectAll(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}
	s.ids = next
}

// Clear 清空选择
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
}

// IsSelected 是否已选中
func (s *Set) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Count 当前选中数量
func (s *Set) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs 返回选中 id 的快照（无顺序保证）
func (s *Set) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
