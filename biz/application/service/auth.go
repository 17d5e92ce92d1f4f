package service

import (
	"context"
	"errors"
	"regexp"
	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *school.RegisterReq) (*school.AuthResp, error)
	Login(ctx context.Context, req *school.LoginReq) (*school.AuthResp, error)
}

type AuthService struct {
	UserMapper user.Mapper
}

var AuthServiceSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Register 注册账号, 密码以bcrypt散列落库
func (s *AuthService) Register(ctx context.Context, req *school.RegisterReq) (*school.AuthResp, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	_, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err == nil {
		return nil, consts.ErrUserExists
	}
	if !errors.Is(err, consts.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, consts.ErrSignUp
	}

	linked := req.LinkedStudents
	if linked == nil {
		linked = []string{}
	}
	u := &user.User{
		Name:           req.Name,
		Email:          req.Email,
		Password:       string(hashed),
		Role:           req.Role,
		LinkedStudents: linked,
	}

	// 邮箱唯一性由存储层唯一索引兜底, 上面的预检只为友好报错
	if err = s.UserMapper.Insert(ctx, u); err != nil {
		log.CtxError(ctx, "insert user failed: %v", err)
		return nil, err
	}

	token, _, err := adaptor.GenerateJwtToken(u.ID.Hex(), u.Role)
	if err != nil {
		log.CtxError(ctx, "generate token failed: %v", err)
		return nil, consts.ErrSignUp
	}

	return &school.AuthResp{
		Token: token,
		User:  toUserInfo(u),
	}, nil
}

// Login 校验凭证并签发token, 任何失败原因都返回同一错误
func (s *AuthService) Login(ctx context.Context, req *school.LoginReq) (*school.AuthResp, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err != nil {
		return nil, consts.ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, consts.ErrInvalidCredentials
	}

	token, _, err := adaptor.GenerateJwtToken(u.ID.Hex(), u.Role)
	if err != nil {
		log.CtxError(ctx, "generate token failed: %v", err)
		return nil, consts.ErrSignIn
	}

	return &school.AuthResp{
		Token: token,
		User:  toUserInfo(u),
	}, nil
}

func validateRegister(req *school.RegisterReq) error {
	if req.Name == "" || !emailPattern.MatchString(req.Email) || len(req.Password) < consts.MinPasswordLen {
		return consts.ErrInvalidParams
	}
	switch req.Role {
	case consts.RoleStudent, consts.RoleParent, consts.RoleTeacher:
		return nil
	}
	return consts.ErrInvalidParams
}

func toUserInfo(u *user.User) *school.UserInfo {
	return &school.UserInfo{
		Id:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
