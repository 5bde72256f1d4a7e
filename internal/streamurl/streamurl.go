// Package streamurl 把播放器嵌入地址规范化为可直接打开的频道地址
package streamurl

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

var reChannel = regexp.MustCompile(`channel=(.+?)(?:&|$)`)

// Normalize 规范化嵌入地址，对已规范化的地址幂等，空输入原样返回。
// twitch带channel参数的地址 → http://twitch.tv/<channel>；
// channel=存在但取不出值时记录日志并原样返回（不报错）；
// 其余地址依次：截掉query → 删掉字面量"#!/embed/" → "//embed."前缀改写为"//"。
func Normalize(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}
	if strings.Contains(rawURL, "twitch") && strings.Contains(rawURL, "channel=") {
		m := reChannel.FindStringSubmatch(rawURL)
		if m == nil {
			logrus.Errorf("无法规范化直播地址: %s", rawURL)
			return rawURL
		}
		return "http://twitch.tv/" + m[1]
	}
	if i := strings.Index(rawURL, "?"); i >= 0 {
		rawURL = rawURL[:i]
	}
	rawURL = strings.ReplaceAll(rawURL, "#!/embed/", "")
	rawURL = strings.ReplaceAll(rawURL, "//embed.", "//")
	return rawURL
}
