package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_OrderAndCount(t *testing.T) {
	rs := Roles()
	require.Len(t, rs, 5)

	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"binding", "logic", "logic_impl", "state", "view"}, names)

	for _, r := range rs {
		assert.NotEmpty(t, r.Description, "role %s has no description", r.Name)
	}
}

func TestRoles_ReturnsCopy(t *testing.T) {
	rs := Roles()
	rs[0].Name = "mutated"
	assert.Equal(t, "binding", Roles()[0].Name)
}

func TestGet(t *testing.T) {
	r, err := Get("view")
	require.NoError(t, err)
	assert.Equal(t, "view", r.Name)

	_, err = Get("controller")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	r, err := Get("logic_impl")
	require.NoError(t, err)
	assert.Equal(t, "reset_password_logic_impl.dart", FileName(r, "reset_password"))
}

func TestRenderRole_AllRolesRender(t *testing.T) {
	data := TemplateData{Snake: "reset_password", Pascal: "ResetPassword"}

	for _, r := range Roles() {
		t.Run(r.Name, func(t *testing.T) {
			content, err := RenderRole(r, data)
			require.NoError(t, err)
			assert.NotEmpty(t, content)
			assert.NotContains(t, string(content), "{{", "unrendered template action in %s", r.Name)
		})
	}
}

func TestRenderRole_IdentifiersUsePascal(t *testing.T) {
	data := TemplateData{Snake: "reset_password", Pascal: "ResetPassword"}

	binding, err := RenderRole(mustGet(t, "binding"), data)
	require.NoError(t, err)
	assert.Contains(t, string(binding), "class ResetPasswordBinding extends Bindings")
	assert.Contains(t, string(binding), "Get.lazyPut<ResetPasswordLogic>(() => ResetPasswordLogicImpl())")

	logic, err := RenderRole(mustGet(t, "logic"), data)
	require.NoError(t, err)
	assert.Contains(t, string(logic), "abstract class ResetPasswordLogic extends GetxController")

	view, err := RenderRole(mustGet(t, "view"), data)
	require.NoError(t, err)
	assert.Contains(t, string(view), "class ResetPasswordPage extends StatelessWidget")
	assert.Contains(t, string(view), "import 'reset_password_logic.dart';")
}

func mustGet(t *testing.T, name string) Role {
	t.Helper()
	r, err := Get(name)
	require.NoError(t, err)
	return r
}
