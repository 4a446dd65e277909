package utils

// GenTokenChanWithSize 生成一组令牌，类似于信号量，协程开始前取一个，结束后放回去。小于1时按1处理
func GenTokenChanWithSize(tokenNum int) chan struct{} {
	if tokenNum <= 0 {
		tokenNum = 1
	}
	ch := make(chan struct{}, tokenNum)
	for i := 0; i < tokenNum; i++ {
		ch <- struct{}{}
	}
	return ch
}
