package menuv1

import (
	"reflect"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
)

func TestCourseGeneratedHelpers(t *testing.T) {
	c := Course_COURSE_DESSERT
	if got := c.Enum(); got == nil || *got != c {
		t.Fatalf("Enum() mismatch: got %v want %v", got, c)
	}
	if got := c.String(); got != "COURSE_DESSERT" {
		t.Fatalf("String() = %q, want COURSE_DESSERT", got)
	}
	if c.Type() == nil {
		t.Fatalf("Type() must not be nil")
	}
	if got := c.Descriptor().Values().Len(); got != 5 {
		t.Fatalf("expected 5 course values, got %d", got)
	}
	if c.Number() != 3 {
		t.Fatalf("Number() = %d, want 3", c.Number())
	}
	_, _ = c.EnumDescriptor()

	if got := Course_value["COURSE_BEVERAGE"]; got != int32(Course_COURSE_BEVERAGE) {
		t.Fatalf("Course_value mismatch: %d", got)
	}
	if got := Course_name[0]; got != "COURSE_UNSPECIFIED" {
		t.Fatalf("Course_name[0] = %q", got)
	}

	unknown := Course(999)
	if unknown.String() == "" {
		t.Fatalf("unknown enum string must not be empty")
	}
}

func TestGeneratedMessageHelpers(t *testing.T) {
	stats := &MenuStats{TotalItems: 6, AveragePrice: 11.17}
	dish := &Dish{Id: "1", Name: "Spicy Arancini", Description: "Crispy rice balls", Course: Course_COURSE_STARTER, Price: 9.5}

	messages := []any{
		dish,
		stats,
		&ListDishesRequest{},
		&ListDishesResponse{Dishes: []*Dish{dish}, Stats: stats},
		&GetStatsRequest{},
		&GetStatsResponse{Stats: stats},
		&FilterDishesRequest{Course: Course_COURSE_MAIN},
		&FilterDishesResponse{Course: Course_COURSE_MAIN, Dishes: []*Dish{dish}},
		&AddDishRequest{Name: "Soup", Description: "Hot soup", Course: Course_COURSE_STARTER, Price: 5},
		&AddDishResponse{Dish: dish, Stats: stats},
		&RemoveDishRequest{Id: "1"},
		&RemoveDishResponse{Removed: true, Stats: stats},
	}

	for _, msg := range messages {
		t.Run(reflect.TypeOf(msg).Elem().Name(), func(t *testing.T) {
			exerciseGeneratedMessage(t, msg)
		})
	}
}

func TestDishWireRoundTrip(t *testing.T) {
	in := &AddDishResponse{
		Dish:  &Dish{Id: "abc", Name: "Soup", Description: "Hot soup", Course: Course_COURSE_STARTER, Price: 5.5},
		Stats: &MenuStats{TotalItems: 7, AveragePrice: 10.36},
	}

	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &AddDishResponse{}
	if err := proto.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch: got %v want %v", out, in)
	}
	if out.GetDish().GetCourse() != Course_COURSE_STARTER {
		t.Fatalf("course lost in round trip: %v", out.GetDish().GetCourse())
	}
}

func TestFileDescriptorMetadata(t *testing.T) {
	fd := File_proto_menu_v1_menu_proto
	if got := fd.Path(); got != "proto/menu/v1/menu.proto" {
		t.Fatalf("unexpected descriptor path %q", got)
	}
	if got := string(fd.Package()); got != "menu.v1" {
		t.Fatalf("unexpected package %q", got)
	}
	if got := fd.Messages().Len(); got != 12 {
		t.Fatalf("expected 12 message descriptors, got %d", got)
	}
	if fd.Enums().ByName("Course") == nil {
		t.Fatalf("Course enum descriptor is missing")
	}

	svc := fd.Services().ByName("MenuService")
	if svc == nil {
		t.Fatalf("MenuService descriptor is missing")
	}
	add := svc.Methods().ByName("AddDish")
	if add == nil {
		t.Fatalf("AddDish method descriptor is missing")
	}
	if got := string(add.Input().FullName()); got != "menu.v1.AddDishRequest" {
		t.Fatalf("AddDish input = %s", got)
	}
	if got := string(add.Output().FullName()); got != "menu.v1.AddDishResponse" {
		t.Fatalf("AddDish output = %s", got)
	}

	price := fd.Messages().ByName("Dish").Fields().ByName("price")
	if price == nil || price.Kind().String() != "double" {
		t.Fatalf("Dish.price must be a double field, got %v", price)
	}
}

func exerciseGeneratedMessage(t *testing.T, msg any) {
	t.Helper()

	v := reflect.ValueOf(msg)

	callNoArg(t, v, "String")
	callNoArg(t, v, "ProtoReflect")
	callNoArg(t, v, "Descriptor")
	callGetterMethods(t, v)
	callNoArg(t, v, "Reset")

	nilReceiver := reflect.Zero(v.Type())
	callNoArg(t, nilReceiver, "ProtoReflect")
	callNoArg(t, nilReceiver, "Descriptor")
	callGetterMethods(t, nilReceiver)
}

func callGetterMethods(t *testing.T, v reflect.Value) {
	t.Helper()

	typ := v.Type()
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !strings.HasPrefix(m.Name, "Get") {
			continue
		}
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		callNoArg(t, v, m.Name)
	}
}

func callNoArg(t *testing.T, v reflect.Value, method string) {
	t.Helper()

	mv := v.MethodByName(method)
	if !mv.IsValid() {
		return
	}
	if mv.Type().NumIn() != 0 {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("method %s panicked: %v", method, r)
		}
	}()

	_ = mv.Call(nil)
}
