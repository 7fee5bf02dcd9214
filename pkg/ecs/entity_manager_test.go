package ecs

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始，0保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.Exists(0) {
		t.Error("EntityID 0 must never exist")
	}
	if em.Len() != 2 {
		t.Errorf("Len() = %d, want 2", em.Len())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 组件以指针保存，修改对后续读取可见
	pos.X = 5
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 5 {
		t.Errorf("Expected shared component pointer, got X=%f", again.X)
	}
}

func TestGetComponentMissing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if _, found := GetComponent[*testPositionComponent](em, id); found {
		t.Error("Component should not be found before adding")
	}
	if _, found := GetComponent[*testPositionComponent](em, 42); found {
		t.Error("Component should not be found on unknown entity")
	}

	// 对不存在的实体添加组件是无操作
	AddComponent(em, 42, &testPositionComponent{})
	if em.Exists(42) {
		t.Error("AddComponent must not create entities")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testPositionComponent{})

	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should have component after adding")
	}
	if !HasComponentOf[*testPositionComponent](em, id) {
		t.Error("HasComponentOf should agree with HasComponent")
	}
	if HasComponentOf[*testVelocityComponent](em, id) {
		t.Error("Should not have velocity component")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 5)
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
		}
		ids = append(ids, id)
	}

	got := Query[*testPositionComponent](em)
	if diff := cmp.Diff(ids, got); diff != "" {
		t.Errorf("Query mismatch (-want, +got):\n%s", diff)
	}

	both := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testVelocityComponent{}),
	)
	want := []EntityID{ids[0], ids[2], ids[4]}
	if diff := cmp.Diff(want, both); diff != "" {
		t.Errorf("GetEntitiesWith mismatch (-want, +got):\n%s", diff)
	}
}
