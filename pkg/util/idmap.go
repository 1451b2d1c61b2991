package util

// IDMap. bidirectional string <-> id map for street names & tags.
// id 0 is reserved for the empty string.
type IDMap struct {
	strToId map[string]uint32
	idToStr []string
}

func NewIdMap() *IDMap {
	m := &IDMap{
		strToId: make(map[string]uint32),
		idToStr: make([]string, 0, 16),
	}
	m.idToStr = append(m.idToStr, "")
	m.strToId[""] = 0
	return m
}

func (m *IDMap) GetID(s string) uint32 {
	if id, ok := m.strToId[s]; ok {
		return id
	}
	id := uint32(len(m.idToStr))
	m.strToId[s] = id
	m.idToStr = append(m.idToStr, s)
	return id
}

func (m *IDMap) GetStr(id uint32) string {
	if int(id) >= len(m.idToStr) {
		return ""
	}
	return m.idToStr[id]
}

func (m *IDMap) Size() int {
	return len(m.idToStr)
}
