package conf

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bingooh/b-go-precheck/precheck"
	"github.com/spf13/viper"
)

const (
	BPC_CONF_ENV = `BPC_CONF_ENV`
	BPC_CONF_DIR = `BPC_CONF_DIR`
)

var Debug = false //启用将打印加载配置日志

// 匹配环境变量${name:default_value}
var envRx = regexp.MustCompile(`^\${([0-9A-Za-z_-]+)(:.*)*}$`)

func MustSetConfEnv(env string) {
	if err := os.Setenv(BPC_CONF_ENV, env); err != nil {
		log.Panic(err)
	}
}

func MustSetConfDir(dir string) {
	if err := os.Setenv(BPC_CONF_DIR, dir); err != nil {
		log.Panic(err)
	}
}

// Load 加载配置，参数dst必须为指针类型
// 参数file指定配置文件路径，文件扩展名将被忽略，目录优先级从上到下：
//   - file包含的目录，如：./cfg/app
//   - 环境变量BPC_CONF_DIR的值
//   - 默认值：./conf
//
// 如果设置环境变量BPC_CONF_ENV，则文件名称会添加此值作为后缀
// 如：BPC_CONF_ENV=dev，file=app。则实际文件名称为app.dev
//
// 配置项值支持使用${name:default_value}引用环境变量值，环境变量名称区分大小写
func Load(dst interface{}, file string) error {
	if err := precheck.CheckNotNil(dst, `dst is nil`); err != nil {
		return err
	}

	if err := precheck.CheckNotNilOrEmpty(strings.TrimSpace(file), `file path is empty`); err != nil {
		return err
	}

	dir, filename, err := resolvePath(file)
	if err != nil {
		return err
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(filename)

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if err := unmarshal(v, dst); err != nil {
		return err
	}

	if Debug {
		log.Printf("load cfg file[%v]\n", v.ConfigFileUsed())
	}

	return nil
}

func MustLoad(dst interface{}, file string) {
	if err := Load(dst, file); err != nil {
		log.Panicf("load cfg file err: %v\n", err)
	}
}

// LoadBytes 从内存加载配置，typ为配置格式，如yaml/json/toml
func LoadBytes(dst interface{}, data []byte, typ string) error {
	if err := precheck.CheckNotNil(dst, `dst is nil`); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType(typ)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return err
	}

	return unmarshal(v, dst)
}

// 返回配置文件目录的绝对路径，以及不含扩展名的文件名称
func resolvePath(file string) (dir, filename string, err error) {
	//viper不支持后缀名
	filename = filepath.Base(file)
	hasDirPath := filename != file
	if ext := filepath.Ext(filename); ext != `` {
		filename = filename[:len(filename)-len(ext)]
	}

	if v := os.Getenv(BPC_CONF_ENV); v != `` {
		filename += `.` + v
	}

	switch {
	case hasDirPath:
		dir = filepath.Dir(file)
	case os.Getenv(BPC_CONF_DIR) != ``:
		dir = os.Getenv(BPC_CONF_DIR)
	default:
		dir = `./conf`
	}

	absDir, err := filepath.Abs(filepath.ToSlash(dir))
	if err != nil {
		return ``, ``, fmt.Errorf(`convert to abs path err[%v]->%w`, dir, err)
	}

	return absDir, filename, nil
}

func unmarshal(v *viper.Viper, dst interface{}) error {
	for key, val := range v.AllSettings() {
		bindConfEnv(v, key, val)
	}

	return v.Unmarshal(dst)
}

func parseEnv(v string) (envName, envDefaultValue string) {
	rs := envRx.FindStringSubmatch(v)
	if len(rs) != 3 {
		return
	}

	if len(rs[2]) == 0 {
		return rs[1], rs[2]
	}

	//去掉冒号
	return rs[1], rs[2][1:]
}

func bindConfEnv(vp *viper.Viper, key string, val interface{}) {
	switch v := val.(type) {
	case map[string]interface{}:
		for k1, v1 := range v {
			bindConfEnv(vp, key+`.`+k1, v1)
		}
	case string:
		envName, envDefaultValue := parseEnv(v)
		if envName == `` {
			return
		}

		//如果环境变量不存在，则直接设置为默认值，vp.SetDefault()的优先级低于配置文件
		if _, ok := os.LookupEnv(envName); !ok {
			vp.Set(key, envDefaultValue)
			return
		}

		if err := vp.BindEnv(key, envName); err != nil {
			log.Printf(`conf env variable bind fail[key=%v,env=%v]->%s`, key, envName, err)
		}
	}
}
