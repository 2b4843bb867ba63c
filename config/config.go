// config/config.go
package config

import (
	"github.com/spf13/viper"
)

// --- Các struct con, phản ánh cấu trúc của YAML ---

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // "debug" echoes OTPs in responses
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbName"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration string `mapstructure:"expiration"` // Go duration, e.g. "24h"
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type AdminConfig struct {
	Mobile   string `mapstructure:"mobile"`
	Password string `mapstructure:"password"`
}

// AdvisoryConfig chứa các tham số nghiệp vụ của bộ sinh cảnh báo và bộ lọc
// chương trình hỗ trợ.
type AdvisoryConfig struct {
	// smallFarmerLandLimit so sánh trực tiếp với landSize, KHÔNG quy đổi đơn
	// vị (cents/hectares). Giữ nguyên hành vi hiện tại của nghiệp vụ cho tới
	// khi chủ rule quyết định đơn vị chuẩn.
	SmallFarmerLandLimit float64 `mapstructure:"smallFarmerLandLimit"`
	MonsoonStartMonth    int     `mapstructure:"monsoonStartMonth"`
	MonsoonEndMonth      int     `mapstructure:"monsoonEndMonth"`
	AlertTTLDays         int     `mapstructure:"alertTTLDays"`
}

// --- Struct Config chính, bao gồm tất cả các struct con ---

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	S3       S3Config       `mapstructure:"s3"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Advisory AdvisoryConfig `mapstructure:"advisory"`
}

// LoadConfig đọc cấu hình từ file và ghi đè bằng các biến môi trường.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("mongo.uri", "MONGO_URI")
	viper.BindEnv("mongo.dbName", "MONGO_DBNAME")
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	viper.BindEnv("admin.mobile", "ADMIN_MOBILE")
	viper.BindEnv("admin.password", "ADMIN_PASSWORD")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.dbName", "krishi_sakhi")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("advisory.smallFarmerLandLimit", 2.0)
	viper.SetDefault("advisory.monsoonStartMonth", 6)
	viper.SetDefault("advisory.monsoonEndMonth", 10)
	viper.SetDefault("advisory.alertTTLDays", 7)

	// Đọc file config.yaml. Nếu file không tồn tại, Viper sẽ chỉ sử dụng
	// các biến môi trường và giá trị mặc định.
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}
