package slist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xingshuo/slist/codec"
	"github.com/xingshuo/slist/config"
	"github.com/xingshuo/slist/interfaces"
	"github.com/xingshuo/slist/lib"
	"github.com/xingshuo/slist/log"
)

var gCodec interfaces.Codec

// Init loads confPath into config.DemoConf, then sets up logging and the
// codec it names. An empty confPath keeps the defaults. On error neither
// config.DemoConf nor the logger is touched.
func Init(confPath string) error {
	conf := config.DemoConf
	// json会复用切片底层数组, 先拷贝
	conf.Values = append([]string(nil), conf.Values...)
	if confPath != "" {
		data, err := os.ReadFile(confPath)
		if err != nil {
			return fmt.Errorf("read config [%s] failed:%w", confPath, err)
		}
		err = json.Unmarshal(data, &conf)
		if err != nil {
			return fmt.Errorf("load config [%s] failed:%w", confPath, err)
		}
	}

	c, err := codec.New(conf.Codec)
	if err != nil {
		return err
	}

	config.DemoConf = conf
	gCodec = c
	log.Init(conf.LogFilename, log.LogLevel(conf.LogLevel))
	log.Debugf("slist init done, codec:%q", conf.Codec)
	return nil
}

func Exit() {
	log.Close()
}

func New[T comparable](vals ...T) *lib.LinkedList[T] {
	return lib.New(vals...)
}

func NewSync[T comparable](vals ...T) *lib.SyncList[T] {
	return lib.NewSyncList(vals...)
}

func GetCodec() interfaces.Codec {
	if gCodec == nil {
		gCodec = &codec.PBCodec{}
	}
	return gCodec
}

// Pack encodes l with the configured codec.
func Pack[T comparable](l *lib.LinkedList[T]) ([]byte, error) {
	return codec.Marshal(l, GetCodec())
}

func Unpack[T comparable](data []byte) (*lib.LinkedList[T], error) {
	return codec.Unmarshal[T](data, GetCodec())
}
