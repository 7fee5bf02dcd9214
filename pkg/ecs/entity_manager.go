package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符
// 0 保留为无效ID，可用作"无实体"（例如链表两端的空邻居）
type EntityID uint64

// EntityManager 管理所有实体和组件
// 仅在游戏更新循环所在的 goroutine 中访问，不加锁
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1, // ID从1开始,0保留为无效ID
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// Exists 判断实体是否存在
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// Len 返回当前实体数量
func (em *EntityManager) Len() int {
	return len(em.components)
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// GetEntitiesWith 返回拥有全部指定组件类型的实体，按ID升序排列
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// AddComponent 为实体添加组件，组件按其静态类型 T 注册
// 对不存在的实体不做任何事
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeFor[T]()] = component
	}
}

// GetComponent 获取实体上类型为 T 的组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeFor[T]()]
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponentOf 检查实体是否拥有类型为 T 的组件
func HasComponentOf[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, reflect.TypeFor[T]())
}

// Query 返回拥有类型为 T 组件的所有实体，按ID升序排列
func Query[T any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T]())
}
