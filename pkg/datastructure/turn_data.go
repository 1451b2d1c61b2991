package datastructure

// TurnData. one classified turn: entering `Node` via `ViaEdge`, taking
// `OutEdge` yields `Instruction`. this is the preprocessor output
// consumed by the navigation engine.
type TurnData struct {
	Node        Index
	ViaEdge     Index
	OutEdge     Index
	Instruction TurnInstruction
}

func NewTurnData(node, viaEdge, outEdge Index, ins TurnInstruction) TurnData {
	return TurnData{
		Node:        node,
		ViaEdge:     viaEdge,
		OutEdge:     outEdge,
		Instruction: ins,
	}
}
