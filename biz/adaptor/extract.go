package adaptor

import (
	"context"
	"errors"
	"school-hub/biz/application/dto/basic"
	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/util/log"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// HasAuthorization 判断请求是否携带了Authorization头
func HasAuthorization(ctx context.Context) bool {
	c, err := ExtractContext(ctx)
	if err != nil {
		return false
	}
	return len(c.GetHeader("Authorization")) > 0
}

// ExtractUserMeta 从请求头解出调用者身份, 凭证缺失或非法时返回空meta.
// 身份只信任 Authorization 头中的jwt, 不读取其他任何请求头.
func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	tokenString := strings.TrimPrefix(string(c.GetHeader("Authorization")), consts.BearerPrefix)
	if tokenString == "" {
		err = errors.New("authorization header is empty")
		return
	}
	token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (interface{}, error) {
		return jwt.ParseECPublicKeyFromPEM([]byte(config.GetConfig().Auth.PublicKey))
	})
	if err != nil {
		return
	}
	if !token.Valid {
		err = errors.New("token is not valid")
		return
	}
	err = mapstructure.Decode(token.Claims, user)
	if err != nil {
		*user = basic.UserMeta{}
		return
	}
	return
}

// GenerateJwtToken 签发jwt, 有效期取配置的AccessExpire(秒)
/*
生成 ECDSA 私钥: openssl ecparam -genkey -name prime256v1 -noout -out private_key.pem
从私钥中提取公钥: openssl ec -in private_key.pem -pubout -out public_key.pem
*/
func GenerateJwtToken(userID, role string) (string, int64, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(config.GetConfig().Auth.SecretKey))
	if err != nil {
		return "", 0, err
	}
	iat := time.Now().Unix()
	exp := iat + config.GetConfig().Auth.AccessExpire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["userId"] = userID
	claims["role"] = role
	token := jwt.New(jwt.SigningMethodES256)
	token.Claims = claims
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}
