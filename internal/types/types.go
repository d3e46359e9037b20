// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности
type EntityID uint64

// NoEntity — нулевой идентификатор, ни одна сущность его не получает
const NoEntity EntityID = 0
