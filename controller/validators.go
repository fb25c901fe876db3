package controller

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Xushengqwer/board_service/models/enums"
)

// RoleNameTag 校验字符串是已知角色名，dto 中以 binding:"dive,role_name" 使用
const RoleNameTag = "role_name"

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators 向 gin 的默认校验器注册自定义规则，可重复调用
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin 的校验引擎不是 validator.Validate")
			return
		}
		registerErr = v.RegisterValidation(RoleNameTag, func(fl validator.FieldLevel) bool {
			return enums.IsValidRole(fl.Field().String())
		})
	})
	return registerErr
}
