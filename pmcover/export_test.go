package pmcover

// SortKeysForTest exposes the internal key ordering to external tests
// so hand-written instances match BuildInstance's key order.
var SortKeysForTest = sortKeys
